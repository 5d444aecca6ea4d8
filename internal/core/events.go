package core

// Event is a side effect emitted by a simulation tick, typically a sound
// trigger. Keeping effects as data in StepResult lets the simulation stay
// deterministic while the platform decides how (or whether) to play them.
type Event uint8

const (
	EventShoot       Event = iota // cannon fired
	EventExplosion                // player or barrier-adjacent blast
	EventInvaderStep              // formation completed one march step
	EventKillShot                 // invader or mystery ship destroyed
	EventMysteryOn                // mystery ship entered, start the hum
	EventMysteryOff               // mystery ship left or died, stop the hum
	EventHadouken                 // wave shot fired
	EventCoin                     // credit banked
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventShoot:
		return "Shoot"
	case EventExplosion:
		return "Explosion"
	case EventInvaderStep:
		return "InvaderStep"
	case EventKillShot:
		return "KillShot"
	case EventMysteryOn:
		return "MysteryOn"
	case EventMysteryOff:
		return "MysteryOff"
	case EventHadouken:
		return "Hadouken"
	case EventCoin:
		return "Coin"
	default:
		return "Unknown"
	}
}
