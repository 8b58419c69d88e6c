package models

// TrackStage is the simplified progress indicator shown to the customer.
type TrackStage string

const (
	StagePlaced         TrackStage = "PLACED"
	StagePreparing      TrackStage = "PREPARING"
	StageOutForDelivery TrackStage = "OUT_FOR_DELIVERY"
	StageDelivered      TrackStage = "DELIVERED"
)

// Stages lists the stages in progress order.
var Stages = []TrackStage{StagePlaced, StagePreparing, StageOutForDelivery, StageDelivered}
