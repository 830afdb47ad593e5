// pkg/config/merge.go
package config

import (
	"fmt"
	"reflect"
)

// MergeConfig 合并配置
// src 的非零字段覆盖 dst 的对应字段，返回合并后的 dst；
// 任一方为 nil 时直接返回另一方，两者都为 nil 报错
//
// 用户只传部分配置时，其余字段保持默认值
func MergeConfig[T any](dst, src *T) (*T, error) {
	if dst == nil && src == nil {
		return nil, fmt.Errorf("%w: both dst and src are nil", ErrMergeFailed)
	}
	if dst == nil {
		return src, nil
	}
	if src == nil {
		return dst, nil
	}

	if err := mergeValues(reflect.ValueOf(dst).Elem(), reflect.ValueOf(src).Elem()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMergeFailed, err)
	}
	return dst, nil
}

// mergeValues 递归合并两个 reflect.Value，src 零值不覆盖
func mergeValues(dst, src reflect.Value) error {
	if !src.IsValid() || src.IsZero() {
		return nil
	}

	switch dst.Kind() {
	case reflect.Struct:
		for i := 0; i < dst.NumField(); i++ {
			if !dst.Field(i).CanSet() {
				continue
			}
			if err := mergeValues(dst.Field(i), src.Field(i)); err != nil {
				return err
			}
		}
		return nil

	case reflect.Ptr:
		if src.IsNil() {
			return nil
		}
		if dst.IsNil() {
			dst.Set(reflect.New(dst.Type().Elem()))
		}
		return mergeValues(dst.Elem(), src.Elem())

	case reflect.Map:
		if dst.IsNil() {
			dst.Set(reflect.MakeMap(dst.Type()))
		}
		for _, key := range src.MapKeys() {
			dst.SetMapIndex(key, src.MapIndex(key))
		}
		return nil

	default:
		// 标量、切片、接口：src 非零即整体覆盖
		if dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}
