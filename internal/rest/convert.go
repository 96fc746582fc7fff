package rest

import "github.com/forstval/studio-backend/internal/studio"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewContact(inquiry studio.Inquiry) Contact {
	return Contact{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Company:     inquiry.Company,
		Phone:       inquiry.Phone,
		ServiceType: inquiry.ServiceType,
		ProjectType: inquiry.ProjectType,
		BudgetRange: inquiry.BudgetRange,
		Timeline:    inquiry.Timeline,
		Message:     inquiry.Message,
		Status:      inquiry.Status,
		CreatedAt:   inquiry.CreatedAt,
		UpdatedAt:   inquiry.UpdatedAt,
	}
}

func NewContacts(inquiries []studio.Inquiry) []Contact {
	return Map(inquiries, NewContact)
}

func NewComment(node *studio.Comment) Comment {
	return Comment{
		ID:            node.ID,
		PostID:        node.PostID,
		ParentID:      node.ParentID,
		AuthorName:    node.AuthorName,
		AuthorWebsite: node.AuthorWebsite,
		Content:       node.Content,
		CreatedAt:     node.CreatedAt,
		Replies:       NewComments(node.Replies),
	}
}

func NewComments(nodes []*studio.Comment) []Comment {
	return Map(nodes, NewComment)
}
