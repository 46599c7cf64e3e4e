package model

const (
	MsgEventAdded     = "Event added successfully"
	MsgEventDeleted   = "Successfully deleted."
	MsgEventUpdated   = "Updated successfully."
	MsgGuestAdded     = "new guest added."
	MsgEventsImported = "Events imported successfully"
	MsgEventNotFound  = "event not found"
	MsgInvalidForm    = "Something went wrong, please verify that you've entered everything in the correct format and try again."
)

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"msg,omitempty"`
}
