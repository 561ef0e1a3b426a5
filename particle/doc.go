// Package particle owns the simulation buffers of a point-cloud instance and
// advances them once per display frame.
//
// Each mounted instance (Field for the hero cloud, Globe for the not-found
// page) owns its buffers exclusively. The frame loop is the only writer;
// render sinks read snapshots between frames and never mutate them.
package particle
