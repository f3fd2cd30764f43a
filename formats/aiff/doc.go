// SPDX-License-Identifier: EPL-2.0

// Package aiff exports decoded tracks as AIFF files.
//
// This package uses github.com/go-audio/aiff to write the container. The
// output is mono big-endian 16-bit PCM at the source rate.
//
//	f, err := os.Create("intro.aiff")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	n, err := aiff.Write(f, src)
//
// The destination must implement io.WriteSeeker.
package aiff
