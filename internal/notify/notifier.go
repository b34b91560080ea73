package notify

import "log"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// ユーザー向け通知の送り先。fire-and-forgetで応答は見ない。
// UI無しでもテストできるようにinterfaceで受け取る。
type Notifier interface {
	Notify(kind Kind, message string)
}

// LogNotifier は標準ロガーに流すだけの実装。
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(kind Kind, message string) {
	log.Printf("[%s] %s", kind, message)
}
