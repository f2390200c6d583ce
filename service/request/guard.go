package requestsvc

import "github.com/omjee001/student-resource-rental/model"

// The guard only reads owner_id and borrower_id, both fixed at creation, so
// its verdict cannot go stale between the check and the store apply.

// canCreate: an owner may not request their own resource.
func canCreate(res *model.Resource, actor model.Identity) bool {
	return res.OwnerID != actor.ID
}

// canAct gates lifecycle actions on an existing request: decisions belong to
// the owner, returns to the borrower.
func canAct(action model.RequestAction, req *model.BorrowRequest, actor model.Identity) bool {
	switch action {
	case model.ActionApprove, model.ActionReject:
		return actor.ID == req.OwnerID
	case model.ActionReturn:
		return actor.ID == req.BorrowerID
	}
	return false
}
