package catalog

// Catalog validation messages
const (
	ErrMsgDuplicateWeapon    = "duplicate weapon id %d"
	ErrMsgDuplicateBox       = "duplicate box id %d"
	ErrMsgNegativePrice      = "weapon %d has a negative base price"
	ErrMsgMissingBorder      = "non-gradable weapon %d has no border unlock id"
	ErrMsgEmptyBox           = "box %d has no weights"
	ErrMsgUnknownWeaponInBox = "box %d references unknown weapon %d"
	ErrMsgNonPositiveWeight  = "box %d has a non-positive weight for weapon %d"
)

// Box ids
const (
	BoxOpenerGuns = 1
	BoxSomp       = 2
	BoxThunder    = 3
	BoxSnonbli    = 4
)

// BorderLightning is the border unlocked by consuming Borde Thunder
const BorderLightning = "lightning"
