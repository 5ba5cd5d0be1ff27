package main

type CircularQueue[T any] struct {
	End    int
	Start  int
	Length int
	Data   []T
}

func NewCircularQueue[T any](size int) CircularQueue[T] {
	return CircularQueue[T]{
		Data: make([]T, size),
	}
}

func (q *CircularQueue[T]) IsFull() bool {
	return q.Length >= len(q.Data)
}

func (q *CircularQueue[T]) IsEmpty() bool {
	return q.Length <= 0
}

// Enqueue overwrites the oldest item when the queue is full.
func (q *CircularQueue[T]) Enqueue(item T) {
	index := q.End

	if q.IsFull() {
		q.Start = (q.Start + 1) % len(q.Data)
	} else {
		q.Length += 1
	}
	q.End = (q.End + 1) % len(q.Data)

	q.Data[index] = item
}

func (q *CircularQueue[T]) At(index int) T {
	return q.Data[(q.Start+index)%len(q.Data)]
}

func (q *CircularQueue[T]) PeekFirst() T {
	return q.Data[q.Start%len(q.Data)]
}

func (q *CircularQueue[T]) PeekLast() T {
	return q.Data[(q.End-1+len(q.Data))%len(q.Data)]
}

func (q *CircularQueue[T]) Clear() {
	q.Length = 0
	q.Start = 0
	q.End = 0
}

const FrameHistorySize = 120

// FrameHistory keeps the timestamps of the last frames drawn.
type FrameHistory struct {
	Timestamps CircularQueue[float64]
}

func NewFrameHistory() FrameHistory {
	return FrameHistory{
		Timestamps: NewCircularQueue[float64](FrameHistorySize),
	}
}

func (h *FrameHistory) Record(timestampMs float64) {
	h.Timestamps.Enqueue(timestampMs)
}

// AverageFrameMs is the mean interval between recorded frames,
// 0 until two frames were recorded.
func (h *FrameHistory) AverageFrameMs() float64 {
	q := &h.Timestamps
	if q.Length < 2 {
		return 0
	}
	return (q.PeekLast() - q.PeekFirst()) / float64(q.Length-1)
}
