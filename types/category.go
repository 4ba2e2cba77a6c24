package types

import "encoding/json"

// CategoryRef 动态的分类载荷 只接受 {"name": "..."} 形态
// 其他任何形态都标记为非法 由业务校验转成字段级错误
type CategoryRef struct {
	Name  string
	valid bool
}

func (r *CategoryRef) UnmarshalJSON(data []byte) error {
	var obj struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil || obj.Name == nil {
		r.valid = false
		return nil
	}
	r.Name = *obj.Name
	r.valid = true
	return nil
}

func (r *CategoryRef) Valid() bool {
	return r.valid
}

type CategoryDTO struct {
	Name string `json:"name"`
}
