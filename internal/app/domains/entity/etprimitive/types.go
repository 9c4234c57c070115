package etprimitive

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// 基础类型和通用值对象

// FlexInt 兼容字符串和数字两种 JSON 形式的整数字段
// 承运商的 serviceLevelAgreement 可能返回 "5" 或 5
type FlexInt int

// UnmarshalJSON 实现 json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(data, `"`)))
	if raw == "" || raw == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("parse flex int %q failed: %w", string(data), err)
	}
	*f = FlexInt(n)
	return nil
}

// FlexString 兼容字符串和数字两种 JSON 形式的字符串字段
// 商户配置里的邮编区间边界可能被存成数字
type FlexString string

// UnmarshalJSON 实现 json.Unmarshaler
func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("parse flex string %q failed: %w", string(data), err)
	}
	*f = FlexString(n.String())
	return nil
}
