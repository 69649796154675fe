package request

// UpdateSettingsRequest merges only the provided quota fields; a nil
// field leaves the stored value untouched.
type UpdateSettingsRequest struct {
	MaxQueueLength        *int  `json:"queueLength,omitempty" validate:"omitempty,gte=1"`
	ReservedPrioritySlots *int  `json:"prioritySlots,omitempty" validate:"omitempty,gte=0"`
	PriorityExtensionTime *int  `json:"priorityExtensionTime,omitempty" validate:"omitempty,gte=0"`
	AutoWaitTimes         *bool `json:"autoWaitTimes,omitempty"`
}
