// Package pq offers a generic binary-heap priority queue and the greedy
// routines that are usually built on one.
//
//	Queue[T]     container/heap behind a typed API: Push, Pop, Peek, Len.
//	NewMin/NewMax  queues for any ordered type.
//	MergeCost    cheapest total cost of merging numbers pairwise, where
//	             each merge costs the sum of the two operands.
//	Median       running median over a stream, kept in two heaps.
//
// Pop and Peek on an empty queue return ErrEmpty.
package pq
