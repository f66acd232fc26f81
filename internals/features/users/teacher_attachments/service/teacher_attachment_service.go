// file: internals/features/users/teacher_attachments/service/teacher_attachment_service.go
package service

import (
	"context"
	"strings"

	"schoolku_backend/internals/features/crud"
	"schoolku_backend/internals/features/users/teacher_attachments/model"
)

// Key dikirim client (tidak ada NewKey): pasangan teacher/attachment harus eksplisit.
var Definition = crud.Definition[model.TeacherAttachmentModel, model.TeacherAttachmentKey]{
	Name:      "teacher attachment",
	Audit:     func(m *model.TeacherAttachmentModel) *crud.Audit { return &m.Audit },
	KeyOf:     func(m *model.TeacherAttachmentModel) model.TeacherAttachmentKey { return m.Key() },
	KeyParams: "/:teacher_id/:attachment_id",
	ParseKey:  parseKey,
	KeyWhere: func(k model.TeacherAttachmentKey) (string, []any) {
		return "teacher_attachment_teacher_id = ? AND teacher_attachment_attachment_id = ?",
			[]any{k.TeacherID, k.AttachmentID}
	},
	Prepare: prepareTeacherAttachment,
	Clone: func(m *model.TeacherAttachmentModel) {
		m.TeacherAttachmentNotes = crud.ClonePtr(m.TeacherAttachmentNotes)
	},
	SortColumns: map[string]string{
		"created_date": "teacher_attachment_created_date",
		"updated_date": "teacher_attachment_updated_date",
	},
	DefaultSort: "created_date",
}

func NewTeacherAttachmentService(
	store crud.Storage[model.TeacherAttachmentModel, model.TeacherAttachmentKey],
) *crud.Service[model.TeacherAttachmentModel, model.TeacherAttachmentKey] {
	return crud.NewService(Definition, store, nil)
}

func parseKey(param func(string) string) (model.TeacherAttachmentKey, error) {
	teacherID, err := crud.ParseUUIDParam("teacher_id")(param)
	if err != nil {
		return model.TeacherAttachmentKey{}, err
	}
	attachmentID, err := crud.ParseUUIDParam("attachment_id")(param)
	if err != nil {
		return model.TeacherAttachmentKey{}, err
	}
	return model.TeacherAttachmentKey{TeacherID: teacherID, AttachmentID: attachmentID}, nil
}

// notes kosong disimpan sebagai NULL
func prepareTeacherAttachment(_ context.Context, m *model.TeacherAttachmentModel, _ *model.TeacherAttachmentModel) error {
	if m.TeacherAttachmentNotes != nil {
		s := strings.TrimSpace(*m.TeacherAttachmentNotes)
		if s == "" {
			m.TeacherAttachmentNotes = nil
		} else {
			m.TeacherAttachmentNotes = &s
		}
	}
	return nil
}
