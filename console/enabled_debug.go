//go:build debug

package console

const defaultEnabled = true
