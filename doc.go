// SPDX-License-Identifier: EPL-2.0

// Package retropbx plays and converts two compact 8-bit oriented track
// formats recorded for handheld hardware.
//
// # Supported Formats
//
//   - PGDA, a delta coded format with a 13-byte header and 4-8 kHz rates,
//     via formats/pgda
//   - 8AD, headerless 4-bit adaptive differential audio at 18157 Hz, via
//     formats/eightad
//
// Decoded tracks can be exported with formats/wav and formats/aiff.
//
// # Quick Start
//
// RenderPCM16 decodes a whole track and optionally resamples it:
//
//	reg := retropbx.NewRegistry()
//	src, err := retropbx.Open(reg, "music/title.8ad")
//	if err != nil {
//	    return err
//	}
//	samples, rate, err := retropbx.RenderPCM16(src, 8000, 4096)
//
// # Real-time Playback
//
// The playback package drives a track list frame by frame into a
// double-buffered sink and keeps a band energy estimate for visualizers:
//
//	arc, _ := catalog.OpenDir("music", "8ad")
//	eng, _ := playback.New(playback.DefaultConfig(playback.FormatADPCM8), arc, sink)
//	eng.StartTrack(0)
//	err := playback.NewScheduler(eng).Run(ctx)
//
// # Package Layout
//
//   - audio: Source and Decoder interfaces, decoder Registry, Resampler
//   - catalog: track archives (in memory or a directory)
//   - formats/pgda, formats/eightad: the two codecs
//   - formats/wav, formats/aiff: export
//   - playback: engine, frame codecs, double buffer, scheduler
//   - spectrum: per-band energy estimate
//   - cmd/retropbx: command line front end
//
// # Sample Format
//
// Sources produce float32 in [-1.0, 1.0]. The playback engine and
// RenderPCM16 produce int16; 8-bit material occupies the top byte.
package retropbx
