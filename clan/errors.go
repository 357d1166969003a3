package clan

import "errors"

var (
	ErrNotEnoughDragons = errors.New("need at least two dragons to interact")
	ErrDragonIndex      = errors.New("dragon index out of range")
	ErrUnknownDragon    = errors.New("unknown dragon")
	ErrDuplicateDragon  = errors.New("dragon already in clan")
)
