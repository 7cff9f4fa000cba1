// Package dto defines the form bindings for the listings feature's HTTP
// transport layer. Field names match the template input names.
package dto

// UploadForm is the POST /uploads form body; the image itself arrives as the
// multipart file field "imageUpload".
type UploadForm struct {
	Category            string `form:"category"`
	CategoryType        string `form:"categoryType"`
	CategoryDescription string `form:"categoryDescription"`
}

// DeleteForm is the POST /contents form body. The image filename travels in
// the form because the delete removes the file before it touches the row.
type DeleteForm struct {
	ID    uint   `form:"deleteId"`
	Image string `form:"deleteImage"`
}

// UpdateCategoryForm is the POST /updateCateg/:id form body.
type UpdateCategoryForm struct {
	Value string `form:"category"`
}

// UpdateTypeForm is the POST /updateCategType/:id form body.
type UpdateTypeForm struct {
	Value string `form:"categoryType"`
}

// UpdateDescriptionForm is the POST /updateCategDescription/:id form body.
type UpdateDescriptionForm struct {
	Value string `form:"categoryDescription"`
}
