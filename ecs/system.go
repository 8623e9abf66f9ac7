package ecs

// System represents one ordered step of a frame.
// Systems keep their own state between frames and receive shared world
// state through their constructors.
type System interface {
	Execute(frame *UpdateFrame)
}
