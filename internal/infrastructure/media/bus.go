package media

import (
	"github.com/rs/zerolog"
	"github.com/tinyzimmer/go-gst/gst"
)

type busEventKind int

const (
	busError busEventKind = iota
	busWarning
	busEOS
	busStateChanged
)

// busEvent is the part of a bus message camview logs.
type busEvent struct {
	kind   busEventKind
	source string
	text   string
	debug  string
	from   string
	to     string
}

// eventFromMessage maps a bus message to a busEvent. State changes of
// child elements are skipped; only the pipeline's own are reported.
func eventFromMessage(msg *gst.Message, pipelineName string) (busEvent, bool) {
	ev := busEvent{source: msg.Source()}

	switch msg.Type() {
	case gst.MessageError:
		gerr := msg.ParseError()
		ev.kind = busError
		ev.text = gerr.Error()
		ev.debug = gerr.DebugString()
	case gst.MessageWarning:
		gerr := msg.ParseWarning()
		ev.kind = busWarning
		ev.text = gerr.Error()
		ev.debug = gerr.DebugString()
	case gst.MessageEOS:
		ev.kind = busEOS
	case gst.MessageStateChanged:
		if ev.source != pipelineName {
			return busEvent{}, false
		}
		oldState, newState := msg.ParseStateChanged()
		ev.kind = busStateChanged
		ev.from = oldState.String()
		ev.to = newState.String()
	default:
		return busEvent{}, false
	}
	return ev, true
}

// logBusEvent only logs. The viewer keeps running on bus errors and the
// user closes the window to exit.
func logBusEvent(log *zerolog.Logger, ev busEvent) {
	switch ev.kind {
	case busError:
		log.Error().Str("source", ev.source).Str("debug", ev.debug).Msg(ev.text)
	case busWarning:
		log.Warn().Str("source", ev.source).Str("debug", ev.debug).Msg(ev.text)
	case busEOS:
		log.Info().Str("source", ev.source).Msg("end of stream")
	case busStateChanged:
		log.Debug().Str("from", ev.from).Str("to", ev.to).Msg("pipeline state changed")
	}
}
