package actor

import "gonum.org/v1/gonum/spatial/r3"

// SensorKind classifies a hit sensor.
type SensorKind uint8

const (
	SensorNPC SensorKind = iota
	SensorPlayer
	SensorMapObj
)

// HitSensor is a named collision sphere attached to an actor.
type HitSensor struct {
	Owner  Host
	Name   string
	Kind   SensorKind
	Radius float64
	Offset r3.Vec // from the owner's translation
}

// Pos returns the sensor centre in world space.
func (s *HitSensor) Pos() r3.Vec {
	return r3.Add(s.Owner.Base().Translation, s.Offset)
}

// IsNPC reports whether the sensor belongs to an NPC body.
func (s *HitSensor) IsNPC() bool { return s.Kind == SensorNPC }

// AddSensor attaches a new sensor owned by h.
func AddSensor(h Host, name string, kind SensorKind, radius float64, offset r3.Vec) *HitSensor {
	s := &HitSensor{Owner: h, Name: name, Kind: kind, Radius: radius, Offset: offset}
	a := h.Base()
	a.Sensors = append(a.Sensors, s)
	return s
}

// Message is a directed notification between actors.
type Message uint8

const (
	MsgTicoRailStartTalk Message = iota
	MsgRailMoverVanish
)

func (m Message) String() string {
	switch m {
	case MsgTicoRailStartTalk:
		return "TicoRailStartTalk"
	case MsgRailMoverVanish:
		return "RailMoverVanish"
	}
	return "unknown"
}

// SendMsg delivers msg to the owner of to. It reports whether the receiver
// accepted it. Dead owners and owners that do not receive messages decline.
func SendMsg(msg Message, to, from *HitSensor) bool {
	if to == nil || to.Owner.Base().Dead {
		return false
	}
	r, ok := to.Owner.(MessageReceiver)
	if !ok {
		return false
	}
	return r.ReceiveMessage(msg, to, from)
}

// SendMsgToHost delivers msg to h with no sensors involved.
func SendMsgToHost(msg Message, h Host) bool {
	if h == nil || h.Base().Dead {
		return false
	}
	r, ok := h.(MessageReceiver)
	if !ok {
		return false
	}
	return r.ReceiveMessage(msg, nil, nil)
}
