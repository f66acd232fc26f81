// file: internals/features/users/teacher_attachments/model/teacher_attachment_model.go
package model

import (
	"github.com/google/uuid"

	"schoolku_backend/internals/features/crud"
)

// TeacherAttachmentKey: primary key komposit (teacher, attachment).
type TeacherAttachmentKey struct {
	TeacherID    uuid.UUID
	AttachmentID uuid.UUID
}

func (k TeacherAttachmentKey) String() string {
	return k.TeacherID.String() + "/" + k.AttachmentID.String()
}

// TeacherAttachmentModel menghubungkan guru dengan lampiran (dokumen, sertifikat, dsb).
type TeacherAttachmentModel struct {
	TeacherAttachmentTeacherID    uuid.UUID `json:"teacher_attachment_teacher_id" gorm:"type:uuid;primaryKey;column:teacher_attachment_teacher_id" validate:"required"`
	TeacherAttachmentAttachmentID uuid.UUID `json:"teacher_attachment_attachment_id" gorm:"type:uuid;primaryKey;column:teacher_attachment_attachment_id" validate:"required"`

	TeacherAttachmentNotes *string `json:"teacher_attachment_notes,omitempty" gorm:"type:text;column:teacher_attachment_notes" validate:"omitempty,max=1000"`

	crud.Audit `gorm:"embedded;embeddedPrefix:teacher_attachment_"`
}

func (TeacherAttachmentModel) TableName() string { return "teacher_attachments" }

func (m *TeacherAttachmentModel) Key() TeacherAttachmentKey {
	return TeacherAttachmentKey{TeacherID: m.TeacherAttachmentTeacherID, AttachmentID: m.TeacherAttachmentAttachmentID}
}
