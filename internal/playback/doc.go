// Package playback replays a generated step sequence.
//
// An Engine holds a cursor into the sequence and advances it on a timer
// while playing. Observers are told about every cursor move and every
// play/pause transition:
//
//	e := playback.New(playback.WithSpeed(300 * time.Millisecond))
//	e.AddObserver(playback.ObserverFuncs{
//		Step: func(s step.Step, i, total int) { fmt.Println(i, s.Narration()) },
//	})
//	e.LoadSteps(steps)
//	e.Play()
//
// The timer comes from a Scheduler. TickerScheduler is the real one; tests
// substitute a scheduler they fire by hand.
package playback
