package component

// Repeat controls what an animation does after its last frame.
type Repeat int

const (
	RepeatForever Repeat = iota
	RepeatNever
)

// DefaultAnimationQueue is the number of clips that may wait behind the
// current one.
const DefaultAnimationQueue = 4

type AnimationClip struct {
	Frames int
	FPS    float64
}

type QueuedAnimation struct {
	Name   string
	Repeat Repeat
}

type Animator struct {
	Clips    map[string]AnimationClip
	Current  string
	Repeat   Repeat
	Frame    int
	Elapsed  float64
	Finished bool
	Queue    []QueuedAnimation
	QueueCap int
}

var AnimatorComponent = NewComponent[Animator]()

// Play switches to clip immediately and drops anything queued. Returns false
// if the clip is unknown.
func (a *Animator) Play(clip string, repeat Repeat) bool {
	if _, ok := a.Clips[clip]; !ok {
		return false
	}
	a.Queue = a.Queue[:0]
	a.start(clip, repeat)
	return true
}

// Enqueue appends clip to play once the current Never clip finishes.
// Returns false if the clip is unknown or the queue is full.
func (a *Animator) Enqueue(clip string, repeat Repeat) bool {
	if _, ok := a.Clips[clip]; !ok {
		return false
	}
	limit := a.QueueCap
	if limit <= 0 {
		limit = DefaultAnimationQueue
	}
	if len(a.Queue) >= limit {
		return false
	}
	a.Queue = append(a.Queue, QueuedAnimation{Name: clip, Repeat: repeat})
	return true
}

func (a *Animator) start(clip string, repeat Repeat) {
	a.Current = clip
	a.Repeat = repeat
	a.Frame = 0
	a.Elapsed = 0
	a.Finished = false
}

// Advance moves the current clip forward by dt seconds, looping Forever
// clips and promoting the next queued clip when a Never clip ends.
func (a *Animator) Advance(dt float64) {
	clip, ok := a.Clips[a.Current]
	if !ok || a.Finished || clip.FPS <= 0 || clip.Frames <= 0 {
		return
	}
	frameTime := 1 / clip.FPS
	a.Elapsed += dt
	for a.Elapsed >= frameTime {
		a.Elapsed -= frameTime
		a.Frame++
		if a.Frame < clip.Frames {
			continue
		}
		if a.Repeat == RepeatForever {
			a.Frame = 0
			continue
		}
		if len(a.Queue) == 0 {
			a.Frame = clip.Frames - 1
			a.Finished = true
			return
		}
		next := a.Queue[0]
		a.Queue = append(a.Queue[:0], a.Queue[1:]...)
		a.start(next.Name, next.Repeat)
		clip = a.Clips[a.Current]
		if clip.FPS <= 0 || clip.Frames <= 0 {
			return
		}
		frameTime = 1 / clip.FPS
	}
}
