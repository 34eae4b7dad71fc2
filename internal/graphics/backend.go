package graphics

// BackendNode is the render-side counterpart of a camera. It only ever sees
// single precision values.
type BackendNode interface {
	SetNearClip(near float32)
	SetFarClip(far float32)
}

// ParallelCameraNode mirrors a ParallelCamera for the renderer.
type ParallelCameraNode struct {
	NearClip float32
	FarClip  float32
}

func (n *ParallelCameraNode) SetNearClip(near float32) { n.NearClip = near }
func (n *ParallelCameraNode) SetFarClip(far float32)   { n.FarClip = far }

// Toolkit creates backend mirrors for scene-graph cameras.
type Toolkit interface {
	CreateParallelCamera() *ParallelCameraNode
}
