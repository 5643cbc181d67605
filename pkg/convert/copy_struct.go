package convert

import (
	"github.com/bytedance/sonic"
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// StructAssign copies same-named fields from source to target
// StructAssign 将同名字段从 source 复制到 target
func StructAssign(target interface{}, source interface{}) error {
	if err := copier.Copy(target, source); err != nil {
		return errors.Wrap(err, "convert: struct assign")
	}
	return nil
}

// StructToMap converts any struct to a map keyed by its JSON field names
// StructToMap 将任意结构体转换为按 JSON 字段名索引的 map
func StructToMap(param interface{}) map[string]interface{} {
	data := make(map[string]interface{})
	str, _ := sonic.Marshal(param)
	_ = sonic.Unmarshal(str, &data)
	return data
}
