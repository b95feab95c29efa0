package dto

type CreateDonationRequest struct {
	RequesterName     string `json:"requesterName"`
	RequesterEmail    string `json:"requesterEmail"`
	RecipientName     string `json:"recipientName"`
	RecipientDistrict string `json:"recipientDistrict"`
	RecipientUpazila  string `json:"recipientUpazila"`
	HospitalName      string `json:"hospitalName"`
	FullAddress       string `json:"fullAddress"`
	BloodGroup        string `json:"bloodGroup"`
	DonationDate      string `json:"donationDate"`
	DonationTime      string `json:"donationTime"`
	RequestMessage    string `json:"requestMessage"`
}

// EditDonationRequest is the allow-list for the edit capability. Status and
// donor fields are absent on purpose: those move only through the transition
// endpoints. Requester email and id are immutable.
type EditDonationRequest struct {
	RequesterName     *string `json:"requesterName"`
	RecipientName     *string `json:"recipientName"`
	RecipientDistrict *string `json:"recipientDistrict"`
	RecipientUpazila  *string `json:"recipientUpazila"`
	HospitalName      *string `json:"hospitalName"`
	FullAddress       *string `json:"fullAddress"`
	BloodGroup        *string `json:"bloodGroup"`
	DonationDate      *string `json:"donationDate"`
	DonationTime      *string `json:"donationTime"`
	RequestMessage    *string `json:"requestMessage"`
}

func (r *EditDonationRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(col string, val *string) {
		if val != nil {
			fields[col] = *val
		}
	}
	set("requester_name", r.RequesterName)
	set("recipient_name", r.RecipientName)
	set("recipient_district", r.RecipientDistrict)
	set("recipient_upazila", r.RecipientUpazila)
	set("hospital_name", r.HospitalName)
	set("full_address", r.FullAddress)
	set("blood_group", r.BloodGroup)
	set("donation_date", r.DonationDate)
	set("donation_time", r.DonationTime)
	set("request_message", r.RequestMessage)
	return fields
}

type TransitionRequest struct {
	Status     string `json:"status"`
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
}

type ConfirmDonationRequest struct {
	DonorName  string `json:"donorName"`
	DonorEmail string `json:"donorEmail"`
}
