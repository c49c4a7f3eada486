package domain

type CtxKey string

const (
	KeyUserID     CtxKey = "UserID"
	KeyUserMobile CtxKey = "Mobile"
	KeyUserRole   CtxKey = "Role"
	KeyRequestID  CtxKey = "RequestID"
)
