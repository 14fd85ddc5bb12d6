//go:build !nogpu

package main

import (
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
)
