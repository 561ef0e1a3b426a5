package parameter

// InputQueueSize caps pending input events between two frames
const InputQueueSize = 256
