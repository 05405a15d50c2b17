//go:build debug

package document

const strictBounds = true
