// pkg/checksum/subtle.go
package checksum

// ConstantTimeEqual 常量时间比较两个字节序列
// 所有摘要比较必须走这一个实现，禁止在调用点各自内联，
// 避免提前返回造成的时序侧信道
//
// 长度不同直接返回 false（长度本身不是秘密）；
// 长度相同时无论差异出现在哪个位置都会走完整个循环
func ConstantTimeEqual(a, b []byte) bool {
	eq, _ := constantTimeCompare(a, b)
	return eq
}

// constantTimeCompare 恒定迭代次数的比较核心
// 返回比较结果与实际检查的字节数，后者用于验证比较确实没有短路
func constantTimeCompare(a, b []byte) (bool, int) {
	if len(a) != len(b) {
		return false, 0
	}

	var v byte
	checked := 0
	for i := 0; i < len(a); i++ {
		v |= a[i] ^ b[i]
		checked++
	}
	return v == 0, checked
}
