// Package catalog ships the default alert catalog: the static binding of
// every known event to its per-category alerts. The arbitration engine
// treats this as opaque, externally authored data; hosts may supply
// their own catalog instead.
package catalog

import (
	"fmt"
	"math"
	"time"

	"klaxon/internal/alerts"
)

// Unit conversions for generated alert text.
const (
	MSToKPH = 3.6
	MSToMPH = 2.23694
)

// minCalibrationSpeed is the speed the calibrator needs to make progress,
// in m/s.
const minCalibrationSpeed = 15.0

func belowSteerSpeedAlert(rctx *alerts.ResolveContext) (*alerts.Alert, error) {
	speed, unit := localSpeed(rctx.Params.MinSteerSpeed, rctx.Metric)
	a := alerts.Alert{
		Text1:         "TAKE CONTROL",
		Text2:         fmt.Sprintf("Steer unavailable below %d %s", speed+5, unit),
		Status:        alerts.StatusUserPrompt,
		Size:          alerts.SizeMid,
		Priority:      alerts.PriorityMid,
		Visual:        alerts.VisualSteerRequired,
		Audible:       alerts.AudibleDing,
		SoundDuration: 100 * time.Millisecond,
		HUDDuration:   100 * time.Millisecond,
		TextDuration:  100 * time.Millisecond,
	}
	return &a, nil
}

func calibrationIncompleteAlert(rctx *alerts.ResolveContext) (*alerts.Alert, error) {
	perc := rctx.Telemetry.CalPerc
	if perc < 0 || perc > 100 {
		return nil, fmt.Errorf("calibration percentage out of range: %d", perc)
	}
	speed, unit := localSpeed(minCalibrationSpeed, rctx.Metric)
	a := alerts.Alert{
		Text1:        fmt.Sprintf("Calibration in progress: %d%%", perc),
		Text2:        fmt.Sprintf("Drive above %d %s", speed, unit),
		Status:       alerts.StatusNormal,
		Size:         alerts.SizeMid,
		Priority:     alerts.PriorityLowest,
		Visual:       alerts.VisualNone,
		Audible:      alerts.AudibleNone,
		TextDuration: 200 * time.Millisecond,
	}
	return &a, nil
}

func noGPSAlert(rctx *alerts.ResolveContext) (*alerts.Alert, error) {
	text2 := "Check GPS antenna placement"
	if rctx.Telemetry.GPSIntegrated {
		text2 = "Check device connection and GPS antenna"
	}
	a := alerts.Alert{
		Text1:         "Poor GPS reception",
		Text2:         text2,
		Status:        alerts.StatusNormal,
		Size:          alerts.SizeMid,
		Priority:      alerts.PriorityLower,
		Visual:        alerts.VisualNone,
		Audible:       alerts.AudibleNone,
		TextDuration:  200 * time.Millisecond,
		CreationDelay: 300 * time.Second,
	}
	return &a, nil
}

func wrongCarModeAlert(rctx *alerts.ResolveContext) (*alerts.Alert, error) {
	text := "Cruise inactive"
	if rctx.Params.CarName == "honda" {
		text = "Main switch off"
	}
	a := alerts.NoEntryAlert(text)
	a.HUDDuration = 0
	return &a, nil
}

func joystickAlert(rctx *alerts.ResolveContext) (*alerts.Alert, error) {
	gb, steer := 0.0, 0.0
	if axes := rctx.Telemetry.JoystickAxes; len(axes) >= 2 {
		gb, steer = axes[0], axes[1]
	}
	a := alerts.Alert{
		Text1:        "Joystick mode",
		Text2:        fmt.Sprintf("Gas: %d%%, Steer: %d%%", int(math.Round(gb*100)), int(math.Round(steer*100))),
		Status:       alerts.StatusNormal,
		Size:         alerts.SizeMid,
		Priority:     alerts.PriorityLow,
		Visual:       alerts.VisualNone,
		Audible:      alerts.AudibleNone,
		TextDuration: 100 * time.Millisecond,
	}
	return &a, nil
}

func autoLaneChangeAlert(rctx *alerts.ResolveContext) (*alerts.Alert, error) {
	a := alerts.Alert{
		Text1:         fmt.Sprintf("Lane change starts in %d seconds", int(rctx.Telemetry.AutoLaneChangeTimer)),
		Text2:         "Check for vehicles in the other lane",
		Status:        alerts.StatusNormal,
		Size:          alerts.SizeMid,
		Priority:      alerts.PriorityLow,
		Visual:        alerts.VisualNone,
		Audible:       alerts.AudibleDingRepeat,
		SoundDuration: 100 * time.Millisecond,
		HUDDuration:   100 * time.Millisecond,
		TextDuration:  100 * time.Millisecond,
		Rate:          0.75,
	}
	return &a, nil
}

func localSpeed(ms float64, metric bool) (int, string) {
	if metric {
		return int(math.Round(ms * MSToKPH)), "km/h"
	}
	return int(math.Round(ms * MSToMPH)), "mph"
}

// Default returns the stock catalog.
func Default() alerts.Catalog {
	return alerts.Catalog{
		// Permanent notices shown in all states.
		alerts.EventStartup: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:         "Be ready to take over at any time",
				Text2:         "Always keep hands on wheel and eyes on road",
				Status:        alerts.StatusNormal,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityLower,
				Audible:       alerts.AudibleEngage,
				SoundDuration: time.Second,
				TextDuration:  10 * time.Second,
			}),
		},
		alerts.EventStartupNoControl: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:         "Dashcam mode",
				Text2:         "Always keep hands on wheel and eyes on road",
				Status:        alerts.StatusNormal,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityLower,
				Audible:       alerts.AudibleDisengage,
				SoundDuration: time.Second,
				TextDuration:  15 * time.Second,
			}),
		},
		alerts.EventStartupNoCar: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:         "Dashcam mode: incompatible vehicle",
				Text2:         "Always keep hands on wheel and eyes on road",
				Status:        alerts.StatusNormal,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityLower,
				Audible:       alerts.AudibleDisengage,
				SoundDuration: time.Second,
				TextDuration:  15 * time.Second,
			}),
		},
		alerts.EventControlsInitializing: {
			alerts.CategoryNoEntry: alerts.Fixed(alerts.NoEntryAlert("System initializing")),
		},
		alerts.EventDashcamMode: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:        "Dashcam mode",
				Status:       alerts.StatusNormal,
				Size:         alerts.SizeSmall,
				Priority:     alerts.PriorityLowest,
				TextDuration: 200 * time.Millisecond,
			}),
		},
		alerts.EventJoystickDebug: {
			alerts.CategoryWarning: alerts.Dynamic(joystickAlert),
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:        "Joystick mode",
				Status:       alerts.StatusNormal,
				Size:         alerts.SizeSmall,
				Priority:     alerts.PriorityLower,
				TextDuration: 100 * time.Millisecond,
			}),
		},
		alerts.EventNoGPS: {
			alerts.CategoryPermanent: alerts.Dynamic(noGPSAlert),
		},
		alerts.EventSoundsUnavailable: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.NormalPermanentAlert("Speaker not found", "Check the device", 200*time.Millisecond)),
			alerts.CategoryNoEntry:   alerts.Fixed(alerts.NoEntryAlert("Speaker not found")),
		},
		alerts.EventOutOfSpace: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.NormalPermanentAlert("Out of storage", "", 200*time.Millisecond)),
			alerts.CategoryNoEntry:   alerts.Fixed(alerts.NoEntryAlert("Out of storage")),
		},
		alerts.EventSensorDataInvalid: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.NormalPermanentAlert("No data from device sensors", "Reboot the device", 200*time.Millisecond)),
			alerts.CategoryNoEntry:   alerts.Fixed(alerts.NoEntryAlert("No data from device sensors")),
		},

		// Degradations requesting a controlled disengage.
		alerts.EventOverheat: {
			alerts.CategoryPermanent:   alerts.Fixed(alerts.NormalPermanentAlert("System overheated", "", 200*time.Millisecond)),
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("System overheated")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("System overheated")),
		},
		alerts.EventCalibrationInvalid: {
			alerts.CategoryPermanent:   alerts.Fixed(alerts.NormalPermanentAlert("Calibration invalid", "Remount device and recalibrate", 200*time.Millisecond)),
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Calibration invalid: remount device and recalibrate")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Calibration invalid: remount device and recalibrate")),
		},
		alerts.EventCalibrationIncomplete: {
			alerts.CategoryPermanent:   alerts.Dynamic(calibrationIncompleteAlert),
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Calibration in progress")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Calibration in progress")),
		},
		alerts.EventDoorOpen: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Door open")),
		},
		alerts.EventSeatbeltNotLatched: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Seatbelt unlatched")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Seatbelt unlatched")),
		},
		alerts.EventESPDisabled: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("ESP off")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("ESP off")),
		},
		alerts.EventLowBattery: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Low battery")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Low battery")),
		},
		alerts.EventLowMemory: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Low memory: reboot the device")),
			alerts.CategoryPermanent:   alerts.Fixed(alerts.NormalPermanentAlert("Low memory", "Reboot the device", 200*time.Millisecond)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Low memory: reboot the device")),
		},
		alerts.EventCommIssue: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Communication issue between processes")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Communication issue between processes")),
		},
		alerts.EventRadarFault: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Radar error: restart the car")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Radar error: restart the car")),
		},
		alerts.EventPosenetInvalid: {
			alerts.CategorySoftDisable: alerts.Fixed(alerts.SoftDisableAlert("Vision model output uncertain")),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Vision model output uncertain")),
		},

		// Faults requiring an immediate disengage.
		alerts.EventAccFaulted: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("Cruise fault")),
			alerts.CategoryPermanent:        alerts.Fixed(alerts.NormalPermanentAlert("Cruise fault", "", 200*time.Millisecond)),
			alerts.CategoryNoEntry:          alerts.Fixed(alerts.NoEntryAlert("Cruise fault")),
		},
		alerts.EventControlsMismatch: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("Controls mismatch")),
		},
		alerts.EventCANError: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("CAN error: check connections")),
			alerts.CategoryPermanent:        alerts.Fixed(alerts.NormalPermanentAlert("CAN error", "Check connections", 200*time.Millisecond)),
			alerts.CategoryNoEntry:          alerts.Fixed(alerts.NoEntryAlert("CAN error: check connections")),
		},
		alerts.EventSteerUnavailable: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("LKAS fault: restart the car")),
			alerts.CategoryPermanent:        alerts.Fixed(alerts.NormalPermanentAlert("LKAS fault", "Restart the car", 200*time.Millisecond)),
			alerts.CategoryNoEntry:          alerts.Fixed(alerts.NoEntryAlert("LKAS fault: restart the car")),
		},
		alerts.EventBrakeUnavailable: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("Cruise fault: restart the car")),
			alerts.CategoryPermanent:        alerts.Fixed(alerts.NormalPermanentAlert("Cruise fault", "Restart the car", 200*time.Millisecond)),
			alerts.CategoryNoEntry:          alerts.Fixed(alerts.NoEntryAlert("Cruise fault: restart the car")),
		},
		alerts.EventPlannerError: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("Planner solution error")),
			alerts.CategoryNoEntry:          alerts.Fixed(alerts.NoEntryAlert("Planner solution error")),
		},
		alerts.EventRelayMalfunction: {
			alerts.CategoryImmediateDisable: alerts.Fixed(alerts.ImmediateDisableAlert("Harness relay malfunction")),
			alerts.CategoryPermanent:        alerts.Fixed(alerts.NormalPermanentAlert("Harness relay malfunction", "Check the hardware", 200*time.Millisecond)),
			alerts.CategoryNoEntry:          alerts.Fixed(alerts.NoEntryAlert("Harness relay malfunction")),
		},
		alerts.EventFanMalfunction: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.NormalPermanentAlert("Fan malfunction", "Check the device", 200*time.Millisecond)),
		},
		alerts.EventCameraMalfunction: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.NormalPermanentAlert("Camera malfunction", "Check the device", 200*time.Millisecond)),
		},

		// Engagement gating.
		alerts.EventSpeedTooHigh: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "Speed too high",
				Text2:         "Model uncertain at this speed",
				Status:        alerts.StatusUserPrompt,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityHigh,
				Audible:       alerts.AudibleWarning,
				SoundDuration: 2200 * time.Millisecond,
				HUDDuration:   3 * time.Second,
				TextDuration:  4 * time.Second,
			}),
			alerts.CategoryNoEntry: alerts.Fixed(alerts.NoEntryAlert("Slow down to engage")),
		},
		alerts.EventParkBrake: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Parking brake engaged")),
		},
		alerts.EventPedalPressed: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Pedal pressed")),
		},
		alerts.EventBrakeHold: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Brake hold active")),
		},
		alerts.EventWrongGear: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Shift to D")),
		},
		alerts.EventReverseGear: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:        "Reverse gear",
				Status:       alerts.StatusNormal,
				Size:         alerts.SizeFull,
				Priority:     alerts.PriorityLowest,
				TextDuration: 200 * time.Millisecond,
			}),
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Fixed(alerts.NoEntryAlert("Gear in R")),
		},
		alerts.EventWrongCarMode: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
			alerts.CategoryNoEntry:     alerts.Dynamic(wrongCarModeAlert),
		},
		alerts.EventBelowEngageSpeed: {
			alerts.CategoryNoEntry: alerts.Fixed(alerts.NoEntryAlert("Speed too low to engage")),
		},
		alerts.EventGasPressed: {
			alerts.CategoryPreEnable: alerts.Fixed(alerts.Alert{
				Text1:         "Release gas pedal to engage braking",
				Status:        alerts.StatusNormal,
				Size:          alerts.SizeSmall,
				Priority:      alerts.PriorityLowest,
				TextDuration:  100 * time.Millisecond,
				CreationDelay: time.Second,
			}),
		},

		// Warnings shown while engaged.
		alerts.EventBelowSteerSpeed: {
			alerts.CategoryWarning: alerts.Dynamic(belowSteerSpeedAlert),
		},
		alerts.EventSteerTempUnavailable: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "TAKE CONTROL",
				Text2:         "Steering temporarily unavailable",
				Status:        alerts.StatusUserPrompt,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityLow,
				Visual:        alerts.VisualSteerRequired,
				Audible:       alerts.AudiblePrompt,
				SoundDuration: time.Second,
				HUDDuration:   time.Second,
				TextDuration:  time.Second,
			}),
			alerts.CategoryNoEntry: alerts.Fixed(alerts.NoEntryAlert("Steering temporarily unavailable")),
		},
		alerts.EventSteerSaturated: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "TAKE CONTROL",
				Text2:         "Turn exceeds steering limit",
				Status:        alerts.StatusUserPrompt,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityMid,
				Visual:        alerts.VisualSteerRequired,
				Audible:       alerts.AudiblePrompt,
				SoundDuration: time.Second,
				HUDDuration:   time.Second,
				TextDuration:  time.Second,
			}),
		},
		alerts.EventFCW: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:         "BRAKE",
				Text2:         "Collision risk",
				Status:        alerts.StatusCritical,
				Size:          alerts.SizeFull,
				Priority:      alerts.PriorityHighest,
				Visual:        alerts.VisualFCW,
				Audible:       alerts.AudibleWarningRepeat,
				SoundDuration: time.Second,
				HUDDuration:   2 * time.Second,
				TextDuration:  2 * time.Second,
			}),
		},
		alerts.EventLDW: {
			alerts.CategoryPermanent: alerts.Fixed(alerts.Alert{
				Text1:         "Take control",
				Text2:         "Lane departure detected",
				Status:        alerts.StatusUserPrompt,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityMid,
				Visual:        alerts.VisualLDW,
				Audible:       alerts.AudiblePrompt,
				SoundDuration: 100 * time.Millisecond,
				HUDDuration:   2 * time.Second,
				TextDuration:  3 * time.Second,
			}),
		},

		// Driver monitoring escalation ladder.
		alerts.EventPreDriverDistracted: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "KEEP EYES ON ROAD: driver distracted",
				Status:        alerts.StatusNormal,
				Size:          alerts.SizeSmall,
				Priority:      alerts.PriorityLow,
				Audible:       alerts.AudibleDing,
				SoundDuration: 100 * time.Millisecond,
				HUDDuration:   100 * time.Millisecond,
				TextDuration:  100 * time.Millisecond,
			}),
		},
		alerts.EventPromptDriverDistracted: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "KEEP EYES ON ROAD",
				Text2:         "Driver distracted",
				Status:        alerts.StatusUserPrompt,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityMid,
				Visual:        alerts.VisualSteerRequired,
				Audible:       alerts.AudibleDistracted,
				SoundDuration: 3 * time.Second,
				HUDDuration:   100 * time.Millisecond,
				TextDuration:  100 * time.Millisecond,
			}),
		},
		alerts.EventDriverDistracted: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "DISENGAGE IMMEDIATELY",
				Text2:         "Driver distracted",
				Status:        alerts.StatusCritical,
				Size:          alerts.SizeFull,
				Priority:      alerts.PriorityHigh,
				Visual:        alerts.VisualSteerRequired,
				Audible:       alerts.AudibleWarningRepeat,
				SoundDuration: 100 * time.Millisecond,
				HUDDuration:   100 * time.Millisecond,
				TextDuration:  100 * time.Millisecond,
			}),
		},

		// Longitudinal / lateral maneuvering.
		alerts.EventManualRestart: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:        "Take control",
				Text2:        "Resume driving manually",
				Status:       alerts.StatusUserPrompt,
				Size:         alerts.SizeMid,
				Priority:     alerts.PriorityLow,
				TextDuration: 200 * time.Millisecond,
			}),
		},
		alerts.EventResumeRequired: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:        "STOPPED",
				Text2:        "Press resume to move",
				Status:       alerts.StatusUserPrompt,
				Size:         alerts.SizeMid,
				Priority:     alerts.PriorityLow,
				TextDuration: 200 * time.Millisecond,
			}),
		},
		alerts.EventPreLaneChangeLeft: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:        "Steer left to start lane change",
				Text2:        "Monitor other vehicles",
				Status:       alerts.StatusNormal,
				Size:         alerts.SizeMid,
				Priority:     alerts.PriorityLow,
				HUDDuration:  100 * time.Millisecond,
				TextDuration: 100 * time.Millisecond,
				Rate:         0.75,
			}),
		},
		alerts.EventPreLaneChangeRight: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:        "Steer right to start lane change",
				Text2:        "Monitor other vehicles",
				Status:       alerts.StatusNormal,
				Size:         alerts.SizeMid,
				Priority:     alerts.PriorityLow,
				HUDDuration:  100 * time.Millisecond,
				TextDuration: 100 * time.Millisecond,
				Rate:         0.75,
			}),
		},
		alerts.EventLaneChangeBlocked: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:         "Car detected in blindspot",
				Text2:         "Monitor other vehicles",
				Status:        alerts.StatusUserPrompt,
				Size:          alerts.SizeMid,
				Priority:      alerts.PriorityLow,
				Audible:       alerts.AudibleDingRepeat,
				SoundDuration: 100 * time.Millisecond,
				HUDDuration:   100 * time.Millisecond,
				TextDuration:  100 * time.Millisecond,
			}),
		},
		alerts.EventLaneChange: {
			alerts.CategoryWarning: alerts.Fixed(alerts.Alert{
				Text1:        "Changing lane",
				Text2:        "Monitor other vehicles",
				Status:       alerts.StatusNormal,
				Size:         alerts.SizeMid,
				Priority:     alerts.PriorityLow,
				HUDDuration:  100 * time.Millisecond,
				TextDuration: 100 * time.Millisecond,
			}),
		},
		alerts.EventAutoLaneChange: {
			alerts.CategoryWarning: alerts.Dynamic(autoLaneChangeAlert),
		},

		// State-transition edges.
		alerts.EventPcmEnable: {
			alerts.CategoryEnable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleEngage)),
		},
		alerts.EventButtonEnable: {
			alerts.CategoryEnable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleEngage)),
		},
		alerts.EventPcmDisable: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
		},
		alerts.EventButtonCancel: {
			alerts.CategoryUserDisable: alerts.Fixed(alerts.EngagementAlert(alerts.AudibleDisengage)),
		},
	}
}
