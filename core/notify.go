package core

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-facing outcome message. The core never renders these
// itself; a Notifier implementation decides how they reach the user.
type Notice struct {
	Kind        NoticeKind
	Title       string
	Description string
}

func SuccessNotice(title, description string) Notice {
	return Notice{Kind: NoticeSuccess, Title: title, Description: description}
}

func ErrorNotice(title, description string) Notice {
	return Notice{Kind: NoticeError, Title: title, Description: description}
}

// Notifier is any service that can surface notices to the user.
type Notifier interface {
	Notify(notices ...Notice)
}
