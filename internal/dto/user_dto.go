package dto

type RegisterRequest struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	BloodGroup string `json:"bloodGroup"`
	District   string `json:"district"`
	Upazila    string `json:"upazila"`
	Avatar     string `json:"avatar"`
}

// UpdateProfileRequest is the allow-list of profile fields a user may change.
// Avatar, role and status are deliberately absent: the avatar changes only
// through the upload flow, role and status through their admin endpoints.
type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	BloodGroup *string `json:"bloodGroup"`
	District   *string `json:"district"`
	Upazila    *string `json:"upazila"`
}

// Fields returns the column map for the provided values only.
func (r *UpdateProfileRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.BloodGroup != nil {
		fields["blood_group"] = *r.BloodGroup
	}
	if r.District != nil {
		fields["district"] = *r.District
	}
	if r.Upazila != nil {
		fields["upazila"] = *r.Upazila
	}
	return fields
}

type SetRoleRequest struct {
	Role string `json:"role"`
}

type SetUserStatusRequest struct {
	Status string `json:"status"`
}
