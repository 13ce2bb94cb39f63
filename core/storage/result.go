package storage

// UploadResult is the outcome of Client.Upload: UploadSuccess or *Failure.
type UploadResult interface {
	uploadResult()
}

// ListResult is the outcome of Client.List: ListSuccess or *Failure.
type ListResult interface {
	listResult()
}

// DeleteResult is the outcome of Client.Delete: DeleteSuccess or *Failure.
type DeleteResult interface {
	deleteResult()
}

// UploadSuccess reports that the object was stored.
type UploadSuccess struct{}

// ListSuccess carries the object names in the order the backend returned them.
type ListSuccess struct {
	Items []string
}

// DeleteSuccess reports that the backend accepted the removal.
type DeleteSuccess struct{}

func (UploadSuccess) uploadResult() {}
func (ListSuccess) listResult()     {}
func (DeleteSuccess) deleteResult() {}

func (*Failure) uploadResult() {}
func (*Failure) listResult()   {}
func (*Failure) deleteResult() {}

// AsFailure returns the failure held by a result, or nil on success.
func AsFailure(result any) *Failure {
	f, _ := result.(*Failure)
	return f
}
