package cache

// lruNode is one entry of the recency list. It carries the key so the
// least recently used entry can be deleted from the map in O(1).
type lruNode[K comparable, V any] struct {
	key   K
	value V
	prev  *lruNode[K, V]
	next  *lruNode[K, V]
}

// lruList is a doubly-linked recency list: head is the most recently used
// entry, tail the least. It is not safe for concurrent use.
type lruList[K comparable, V any] struct {
	head *lruNode[K, V]
	tail *lruNode[K, V]
	len  int
}

// Len returns the number of nodes in the list.
func (l *lruList[K, V]) Len() int {
	return l.len
}

// PushFront inserts a new node as the most recently used.
func (l *lruList[K, V]) PushFront(key K, value V) *lruNode[K, V] {
	n := &lruNode[K, V]{key: key, value: value}
	l.linkFront(n)
	return n
}

// MoveToFront marks n as the most recently used.
func (l *lruList[K, V]) MoveToFront(n *lruNode[K, V]) {
	if n == l.head {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// RemoveOldest unlinks the least recently used node and returns it,
// or nil when the list is empty.
func (l *lruList[K, V]) RemoveOldest() *lruNode[K, V] {
	n := l.tail
	if n != nil {
		l.unlink(n)
	}
	return n
}

// Clear drops every node.
func (l *lruList[K, V]) Clear() {
	l.head, l.tail, l.len = nil, nil, 0
}

func (l *lruList[K, V]) linkFront(n *lruNode[K, V]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *lruList[K, V]) unlink(n *lruNode[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}
