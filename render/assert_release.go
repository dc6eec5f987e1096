//go:build !isodebug

package render

const isodebug = false
