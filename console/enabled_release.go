//go:build !debug

package console

const defaultEnabled = false
