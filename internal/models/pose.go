// Package models builds the catalog of block models: mobs, a few
// entities and furniture, each as an assembled list of rig parts.
//
// Every constructor returns a ready-to-compile model. Models with a
// pose function apply it once with the inputs the catalog expects, and
// callers may re-pose through the Poser interface before compiling.
package models

// degPerRad divides head yaw and pitch, given in degrees, into radians.
const degPerRad = 57.29578

// Pose is the input of a pose function. Fields map to the usual mob
// animation inputs; a model ignores the ones it does not use.
type Pose struct {
	Swing         float32 // limb swing phase
	SwingAmount   float32 // limb swing amplitude, 0..1
	Age           float32 // ticks
	Yaw           float32 // head yaw, degrees
	Pitch         float32 // head pitch, degrees
	SwingProgress float32 // arm attack swing, 0..1
}

// Poser is implemented by models whose parts move with a pose.
type Poser interface {
	SetPose(p Pose)
}
