package model

type Province struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type District struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Ward struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Address is built level by level as the user walks the cascade, then
// flattened to a single string for submission.
type Address struct {
	Detail       string `json:"detail"`
	ProvinceID   string `json:"provinceId"`
	ProvinceName string `json:"provinceName"`
	DistrictID   string `json:"districtId"`
	DistrictName string `json:"districtName"`
	WardID       string `json:"wardId"`
	WardName     string `json:"wardName"`
}

func (a Address) String() string {
	out := a.Detail
	for _, part := range []string{a.WardName, a.DistrictName, a.ProvinceName} {
		if part == "" {
			continue
		}
		if out == "" {
			out = part
			continue
		}
		out += ", " + part
	}
	return out
}
