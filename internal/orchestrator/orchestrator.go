package orchestrator

import (
	"context"
	"errors"
	"strings"

	"timesheet-assistant/internal/model"
	pkgLog "timesheet-assistant/pkg/log"
)

// HandleMessage processes one user message for the session in sc and talks
// back through ch.
func (o *Orchestrator) HandleMessage(ctx context.Context, sc model.Scope, ch model.Channel, text string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	ctx = pkgLog.WithSessionID(ctx, sc.SessionID)
	s := o.session(sc.SessionID)

	if s.pending != nil {
		switch answer(text) {
		case answerYes:
			return o.resolve(ctx, sc, ch, s, true)
		case answerNo:
			return o.resolve(ctx, sc, ch, s, false)
		default:
			return o.emit(ctx, ch, msgPendingReminder)
		}
	}

	if err := ch.SignalWorking(ctx); err != nil {
		o.l.Warnf(ctx, "%s: signal working: %v", logPrefixHandle, err)
	}
	o.sleep(ctx, o.cfg.ThinkingDelay)

	intent, ok := o.router.Classify(ctx, text, sc)
	if !ok {
		return o.emit(ctx, ch, HelpText)
	}

	out, err := o.dispatch(ctx, sc, intent)
	if err != nil {
		return o.fail(ctx, ch, intent.Kind, err)
	}

	if out.Confirmation != nil {
		s.pending = out.Confirmation
		if err := ch.Confirm(ctx, out.Confirmation.Prompt); err != nil {
			s.pending = nil
			o.l.Errorf(ctx, "%s: confirm: %v", logPrefixHandle, err)
			return err
		}
		return nil
	}
	return o.deliver(ctx, ch, out.Reply)
}

// Resolve answers the pending confirmation of the session in sc.
func (o *Orchestrator) Resolve(ctx context.Context, sc model.Scope, ch model.Channel, confirmed bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	ctx = pkgLog.WithSessionID(ctx, sc.SessionID)
	s := o.session(sc.SessionID)
	if s.pending == nil {
		return ErrNoPendingConfirmation
	}
	return o.resolve(ctx, sc, ch, s, confirmed)
}

// Pending reports whether the session waits for a yes/no answer.
func (o *Orchestrator) Pending(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions.Peek(sessionID)
	return ok && s.pending != nil
}

// Reset drops the session, pending confirmation included. It reports whether
// the session existed.
func (o *Orchestrator) Reset(sessionID string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.sessions.Remove(sessionID)
}

// resolve runs exactly one continuation and clears the pending state before
// doing so. Callers hold o.mu.
func (o *Orchestrator) resolve(ctx context.Context, sc model.Scope, ch model.Channel, s *session, confirmed bool) error {
	c := s.pending
	s.pending = nil

	if !confirmed {
		return o.deliver(ctx, ch, c.OnCancel(ctx, sc))
	}

	reply, err := c.OnConfirm(ctx, sc)
	if err != nil {
		return o.fail(ctx, ch, "confirmation", err)
	}
	o.sleep(ctx, o.cfg.ReplyDelay)
	return o.deliver(ctx, ch, reply)
}

func (o *Orchestrator) session(id string) *session {
	if s, ok := o.sessions.Get(id); ok {
		return s
	}
	s := &session{}
	o.sessions.Add(id, s)
	return s
}

// fail turns an error into a chat message. User errors are shown as is,
// anything else is logged and replaced by a generic message.
func (o *Orchestrator) fail(ctx context.Context, ch model.Channel, what any, err error) error {
	var ue *model.UserError
	if errors.As(err, &ue) {
		o.l.Infof(ctx, "%s: %v: %v", logPrefixHandle, what, err)
		return o.emit(ctx, ch, ue.Message)
	}
	o.l.Errorf(ctx, "%s: %v: %v", logPrefixHandle, what, err)
	return o.emit(ctx, ch, msgInternalError)
}

// deliver emits the messages in order, then the export.
func (o *Orchestrator) deliver(ctx context.Context, ch model.Channel, reply model.Reply) error {
	for _, m := range reply.Messages {
		if err := o.emit(ctx, ch, m); err != nil {
			return err
		}
	}
	if reply.Export != nil {
		if err := ch.SendFile(ctx, *reply.Export); err != nil {
			o.l.Errorf(ctx, "%s: send file %s: %v", logPrefixEmit, reply.Export.Filename, err)
			return err
		}
	}
	return nil
}

func (o *Orchestrator) emit(ctx context.Context, ch model.Channel, text string) error {
	if err := ch.Emit(ctx, text); err != nil {
		o.l.Errorf(ctx, "%s: %v", logPrefixEmit, err)
		return err
	}
	return nil
}

type yesNo int

const (
	answerOther yesNo = iota
	answerYes
	answerNo
)

func answer(text string) yesNo {
	switch strings.Trim(strings.ToLower(strings.TrimSpace(text)), ".!¡") {
	case "sí", "si":
		return answerYes
	case "no":
		return answerNo
	}
	return answerOther
}
