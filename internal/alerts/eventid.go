package alerts

// EventID identifies one distinct condition a producer subsystem can
// assert. The integer order is the total order over events; the name
// table below is the authoritative mapping to wire/display names.
type EventID int

const (
	EventStartup EventID = iota
	EventStartupNoControl
	EventStartupNoCar
	EventControlsInitializing
	EventDashcamMode
	EventJoystickDebug
	EventNoGPS
	EventSoundsUnavailable
	EventOutOfSpace
	EventSensorDataInvalid
	EventOverheat
	EventWrongGear
	EventReverseGear
	EventCalibrationInvalid
	EventCalibrationIncomplete
	EventDoorOpen
	EventSeatbeltNotLatched
	EventESPDisabled
	EventLowBattery
	EventLowMemory
	EventCommIssue
	EventRadarFault
	EventPosenetInvalid
	EventAccFaulted
	EventControlsMismatch
	EventCANError
	EventSteerUnavailable
	EventBrakeUnavailable
	EventPlannerError
	EventRelayMalfunction
	EventFanMalfunction
	EventCameraMalfunction
	EventSpeedTooHigh
	EventParkBrake
	EventPedalPressed
	EventBrakeHold
	EventWrongCarMode
	EventBelowEngageSpeed
	EventBelowSteerSpeed
	EventSteerTempUnavailable
	EventSteerSaturated
	EventFCW
	EventLDW
	EventGasPressed
	EventPreDriverDistracted
	EventPromptDriverDistracted
	EventDriverDistracted
	EventManualRestart
	EventResumeRequired
	EventPreLaneChangeLeft
	EventPreLaneChangeRight
	EventLaneChangeBlocked
	EventLaneChange
	EventAutoLaneChange
	EventPcmEnable
	EventButtonEnable
	EventPcmDisable
	EventButtonCancel

	eventIDCount // sentinel, keep last
)

var eventNames = [eventIDCount]string{
	EventStartup:                "startup",
	EventStartupNoControl:       "startupNoControl",
	EventStartupNoCar:           "startupNoCar",
	EventControlsInitializing:   "controlsInitializing",
	EventDashcamMode:            "dashcamMode",
	EventJoystickDebug:          "joystickDebug",
	EventNoGPS:                  "noGps",
	EventSoundsUnavailable:      "soundsUnavailable",
	EventOutOfSpace:             "outOfSpace",
	EventSensorDataInvalid:      "sensorDataInvalid",
	EventOverheat:               "overheat",
	EventWrongGear:              "wrongGear",
	EventReverseGear:            "reverseGear",
	EventCalibrationInvalid:     "calibrationInvalid",
	EventCalibrationIncomplete:  "calibrationIncomplete",
	EventDoorOpen:               "doorOpen",
	EventSeatbeltNotLatched:     "seatbeltNotLatched",
	EventESPDisabled:            "espDisabled",
	EventLowBattery:             "lowBattery",
	EventLowMemory:              "lowMemory",
	EventCommIssue:              "commIssue",
	EventRadarFault:             "radarFault",
	EventPosenetInvalid:         "posenetInvalid",
	EventAccFaulted:             "accFaulted",
	EventControlsMismatch:       "controlsMismatch",
	EventCANError:               "canError",
	EventSteerUnavailable:       "steerUnavailable",
	EventBrakeUnavailable:       "brakeUnavailable",
	EventPlannerError:           "plannerError",
	EventRelayMalfunction:       "relayMalfunction",
	EventFanMalfunction:         "fanMalfunction",
	EventCameraMalfunction:      "cameraMalfunction",
	EventSpeedTooHigh:           "speedTooHigh",
	EventParkBrake:              "parkBrake",
	EventPedalPressed:           "pedalPressed",
	EventBrakeHold:              "brakeHold",
	EventWrongCarMode:           "wrongCarMode",
	EventBelowEngageSpeed:       "belowEngageSpeed",
	EventBelowSteerSpeed:        "belowSteerSpeed",
	EventSteerTempUnavailable:   "steerTempUnavailable",
	EventSteerSaturated:         "steerSaturated",
	EventFCW:                    "fcw",
	EventLDW:                    "ldw",
	EventGasPressed:             "gasPressed",
	EventPreDriverDistracted:    "preDriverDistracted",
	EventPromptDriverDistracted: "promptDriverDistracted",
	EventDriverDistracted:       "driverDistracted",
	EventManualRestart:          "manualRestart",
	EventResumeRequired:         "resumeRequired",
	EventPreLaneChangeLeft:      "preLaneChangeLeft",
	EventPreLaneChangeRight:     "preLaneChangeRight",
	EventLaneChangeBlocked:      "laneChangeBlocked",
	EventLaneChange:             "laneChange",
	EventAutoLaneChange:         "autoLaneChange",
	EventPcmEnable:              "pcmEnable",
	EventButtonEnable:           "buttonEnable",
	EventPcmDisable:             "pcmDisable",
	EventButtonCancel:           "buttonCancel",
}

// eventsByName is the reverse lookup used at the process boundary.
var eventsByName = func() map[string]EventID {
	m := make(map[string]EventID, len(eventNames))
	for id, name := range eventNames {
		m[name] = EventID(id)
	}
	return m
}()

// String returns the wire/display name of the event.
func (id EventID) String() string {
	if id < 0 || id >= eventIDCount {
		return "unknown"
	}
	return eventNames[id]
}

// EventIDFromName resolves a wire name to its EventID.
func EventIDFromName(name string) (EventID, bool) {
	id, ok := eventsByName[name]
	return id, ok
}
