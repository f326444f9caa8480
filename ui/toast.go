package ui

// ToastType selects the toast colour
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
)

// ToastMessage is a transient notification shown in the page corner
type ToastMessage struct {
	Message string
	Type    ToastType
}

// Success and error toasts for roster changes, keyed by the ?toast= value
// handlers redirect with.
var successToasts = map[string]string{
	"created": "member added",
	"updated": "member updated",
	"deleted": "member removed",
}

// SuccessToast returns a success toast
func SuccessToast(message string) *ToastMessage {
	return &ToastMessage{Message: message, Type: ToastSuccess}
}

// ErrorToast returns an error toast
func ErrorToast(message string) *ToastMessage {
	return &ToastMessage{Message: message, Type: ToastError}
}

// toastFromQuery resolves a ?toast= code; unknown codes yield no toast
func toastFromQuery(code string) *ToastMessage {
	if msg, ok := successToasts[code]; ok {
		return SuccessToast(msg)
	}
	return nil
}
