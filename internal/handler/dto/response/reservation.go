package response

import (
	"time"

	"stayhub/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID               uuid.UUID  `json:"id"`
	InstanceID       uuid.UUID  `json:"instanceId"`
	InstanceName     string     `json:"instanceName"`
	ApartmentID      uuid.UUID  `json:"apartmentId"`
	ApartmentName    string     `json:"apartmentName"`
	UserID           uuid.UUID  `json:"userId"`
	UserEmail        string     `json:"userEmail"`
	ReservedFrom     time.Time  `json:"reservedFrom"`
	ReservedTo       time.Time  `json:"reservedTo"`
	NightlyRateCents int64      `json:"nightlyRateCents"`
	TotalPriceCents  int64      `json:"totalPriceCents"`
	Status           string     `json:"status"`
	RejectionReason  *string    `json:"rejectionReason,omitempty"`
	RejectedBy       *uuid.UUID `json:"rejectedBy,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

type ReservationListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	InstanceID      uuid.UUID `json:"instanceId"`
	InstanceName    string    `json:"instanceName"`
	ApartmentName   string    `json:"apartmentName"`
	ReservedFrom    time.Time `json:"reservedFrom"`
	ReservedTo      time.Time `json:"reservedTo"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ManagerReservationListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	InstanceID      uuid.UUID `json:"instanceId"`
	InstanceName    string    `json:"instanceName"`
	ApartmentName   string    `json:"apartmentName"`
	UserID          uuid.UUID `json:"userId"`
	UserEmail       string    `json:"userEmail"`
	ReservedFrom    time.Time `json:"reservedFrom"`
	ReservedTo      time.Time `json:"reservedTo"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ReservationListResponse struct {
	Items      []*ReservationListItemResponse `json:"items"`
	NextCursor *string                        `json:"nextCursor,omitempty"`
}

type ManagerReservationListResponse struct {
	Items      []*ManagerReservationListItemResponse `json:"items"`
	NextCursor *string                               `json:"nextCursor,omitempty"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationList(items []*queries.ReservationListItem, nextCursor *string) *ReservationListResponse {
	out := make([]*ReservationListItemResponse, len(items))
	for i, it := range items {
		var resp ReservationListItemResponse
		_ = copier.Copy(&resp, it)
		out[i] = &resp
	}
	return &ReservationListResponse{Items: out, NextCursor: nextCursor}
}

func FromManagerReservationList(items []*queries.ManagerReservationListItem, nextCursor *string) *ManagerReservationListResponse {
	out := make([]*ManagerReservationListItemResponse, len(items))
	for i, it := range items {
		var resp ManagerReservationListItemResponse
		_ = copier.Copy(&resp, it)
		out[i] = &resp
	}
	return &ManagerReservationListResponse{Items: out, NextCursor: nextCursor}
}
