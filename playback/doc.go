// SPDX-License-Identifier: EPL-2.0

// Package playback runs a track list through a frame codec into a
// double-buffered sink.
//
// An Engine owns one session: the current track, its decode cursor, the
// play state and the spectrum estimator fed from every decoded frame. It is
// built for a single format:
//
//	cfg := playback.DefaultConfig(playback.FormatADPCM8)
//	eng, err := playback.New(cfg, archive, sink, playback.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	eng.StartTrack(0)
//
// # Frames
//
// Output is produced one fixed-size frame per tick. An 8AD frame is 304
// samples decoded from 152 bytes, about 16.7 ms at 18157 Hz. PGDA frames
// default to 1024 samples and run at the rate in the track header.
//
// Each period the driver calls BufferSwap, which hands the frame decoded last
// period to the Sink, and then Tick, which decodes the next frame into the
// buffer just released. Scheduler does this from a time.Ticker:
//
//	sched := playback.NewScheduler(eng)
//	err := sched.Run(ctx)
//
// # End of Track
//
// When less than a frame is left the engine moves to the next track, wrapping
// at the end of the archive, and outputs silence for that period. A track
// that cannot be loaded is skipped the same way on the following tick. If
// every track fails to load the engine goes idle.
//
// # Spectrum
//
// Spectrum returns the estimator. It is reset on every track start and when
// pausing; otherwise the reader is expected to take Snapshot on its own
// schedule.
package playback
