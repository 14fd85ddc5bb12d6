package main

import "github.com/gogpu/gg"

// closeAccelerator releases the GPU accelerator if one was registered.
func closeAccelerator() {
	if a := gg.Accelerator(); a != nil {
		a.Close()
	}
}
