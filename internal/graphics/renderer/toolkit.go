package renderer

import "orthocam/internal/graphics"

// Toolkit hands out backend camera nodes and keeps track of them so the
// render side can enumerate every live mirror.
type Toolkit struct {
	cameras []*graphics.ParallelCameraNode
}

func NewToolkit() *Toolkit {
	return &Toolkit{}
}

func (tk *Toolkit) CreateParallelCamera() *graphics.ParallelCameraNode {
	node := &graphics.ParallelCameraNode{}
	tk.cameras = append(tk.cameras, node)
	return node
}

// ParallelCameras returns the nodes created so far, oldest first.
func (tk *Toolkit) ParallelCameras() []*graphics.ParallelCameraNode {
	return tk.cameras
}
