package main

import "github.com/fatih/color"

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	keyColor     = color.New(color.FgCyan)
)
