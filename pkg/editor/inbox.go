package editor

import "context"

// post queues fn to run on the event goroutine. It blocks while the queue
// is full and gives up once the session is closed.
func (s *Session) post(fn func()) bool {
	if s.ctx.Err() != nil {
		return false
	}
	select {
	case s.inbox <- fn:
		return true
	case <-s.ctx.Done():
		return false
	}
}

// Post queues fn to run during a later Pump. It is safe to call from any
// goroutine and returns false if the session is closed.
func (s *Session) Post(fn func()) bool {
	return s.post(fn)
}

// Pump runs every queued completion without blocking and returns how many
// ran. Hosts call it once per frame.
func (s *Session) Pump() int {
	n := 0
	for {
		select {
		case fn := <-s.inbox:
			fn()
			n++
		default:
			return n
		}
	}
}

// Pending returns the number of asset requests whose completion has not run.
func (s *Session) Pending() int {
	return int(s.pending.Load())
}

// Wait runs queued completions until no asset request is outstanding, ctx is
// done or the session is closed.
func (s *Session) Wait(ctx context.Context) error {
	for s.pending.Load() > 0 {
		if s.ctx.Err() != nil {
			return ErrClosed
		}
		select {
		case fn := <-s.inbox:
			fn()
		case <-ctx.Done():
			return ctx.Err()
		case <-s.ctx.Done():
			return ErrClosed
		}
	}
	s.Pump()
	return nil
}
