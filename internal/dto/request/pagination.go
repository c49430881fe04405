package request

const (
	DefaultTake = 50
	MaxTake     = 100
)

// ListRequest carries skip/take pagination. No total count is computed.
type ListRequest struct {
	Skip int
	Take int
}

func NewListRequest(skip, take int) *ListRequest {
	return &ListRequest{Skip: skip, Take: take}
}

func (p ListRequest) Offset() int {
	if p.Skip < 0 {
		return 0
	}
	return p.Skip
}

// Limit returns 0 for a non-positive take, meaning an empty page.
func (p ListRequest) Limit() int {
	if p.Take < 0 {
		return 0
	}
	if p.Take > MaxTake {
		return MaxTake
	}
	return p.Take
}
