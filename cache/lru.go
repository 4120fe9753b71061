package cache

// entry is a cached key/value pair and its place in the shard's LRU list.
type entry[K any, V any] struct {
	hash  uint64
	key   K
	value V
	prev  *entry[K, V]
	next  *entry[K, V]
}

// lruList is a doubly-linked list for LRU eviction.
// The list is not thread-safe; callers must handle synchronization.
//
// The head is the most recently used, tail is least recently used.
type lruList[K any, V any] struct {
	head *entry[K, V]
	tail *entry[K, V]
	len  int
}

// Len returns the number of entries in the list.
func (l *lruList[K, V]) Len() int {
	return l.len
}

// PushFront adds an entry at the front (most recently used).
func (l *lruList[K, V]) PushFront(e *entry[K, V]) {
	e.prev = nil
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	} else {
		l.tail = e
	}
	l.head = e
	l.len++
}

// MoveToFront moves an existing entry to the front.
func (l *lruList[K, V]) MoveToFront(e *entry[K, V]) {
	if e == l.head {
		return
	}
	l.Remove(e)
	l.PushFront(e)
}

// Remove unlinks an entry from the list.
func (l *lruList[K, V]) Remove(e *entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.tail = e.prev
	}
	e.prev, e.next = nil, nil
	l.len--
}

// Oldest returns the least recently used entry, or nil if the list is empty.
func (l *lruList[K, V]) Oldest() *entry[K, V] {
	return l.tail
}

// Clear removes all entries from the list.
func (l *lruList[K, V]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}
