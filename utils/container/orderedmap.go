package container

// OrderedMap 保持插入顺序的映射
// 功能：提供O(1)按键查找，同时按插入顺序遍历
// 说明：由显式的map和有序键列表组成，不依赖语言层面的map遍历顺序；
// 已存在的键在Set时保持原有位置
type OrderedMap[K comparable, V any] struct {
	keys []K     // 按插入顺序排列的键
	data map[K]V // 键值存储
}

// NewOrderedMap 创建有序映射
// 参数：capacity-预分配容量
func NewOrderedMap[K comparable, V any](capacity int) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		keys: make([]K, 0, capacity),
		data: make(map[K]V, capacity),
	}
}

// Len 获取元素个数
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Set 设置键对应的值
// 功能：新键追加到末尾，已有键原地覆盖
// 返回：true表示新增了键
func (m *OrderedMap[K, V]) Set(key K, value V) bool {
	_, ok := m.data[key]
	if !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
	return !ok
}

// Get 获取键对应的值
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

// Has 检查键是否存在
func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.data[key]
	return ok
}

// Keys 按插入顺序返回键的副本
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Values 按插入顺序返回值的副本
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, len(m.keys))
	for i, k := range m.keys {
		values[i] = m.data[k]
	}
	return values
}

// Range 按插入顺序遍历，f返回false时停止
func (m *OrderedMap[K, V]) Range(f func(key K, value V) bool) {
	for _, k := range m.keys {
		if !f(k, m.data[k]) {
			return
		}
	}
}

// Clone 深拷贝键列表与映射（值按赋值语义复制）
func (m *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	c := NewOrderedMap[K, V](len(m.keys))
	for _, k := range m.keys {
		c.Set(k, m.data[k])
	}
	return c
}
