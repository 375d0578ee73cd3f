// Package ds provides small generic containers with the method shapes the
// dbg printer recognizes.
//
// [Stack] and [PriorityQueue] expose Top/Pop and render in drain order,
// [Queue] exposes Front/Pop, [Pair] renders as a two-slot product, and
// [AutoList] renders as a linear sequence through its All iterator. Each
// drainable container implements Clone so that printing never disturbs the
// caller's copy.
package ds
