package catalog

import "vfp/workout-tracker/internal/domain"

// weeklyProgram is the clinical 4-day visceral-fat protocol. Days not listed
// are rest days.
var weeklyProgram = []domain.Program{
	{
		Day:       "Tuesday",
		Focus:     "Upper Body & Cardio",
		TimeLimit: "Max 50 Mins",
		Sequence:  "Resistance (25 min) -> Cardio (25 min)",
		Exercises: []domain.Exercise{
			{
				ID:          "tue_r1",
				Category:    domain.CategoryResistance,
				Name:        "Dumbbell Bench Press",
				Sets:        4,
				Reps:        "8-10",
				DefaultRest: 75,
				MuscleGroup: "Chest",
				Tip:         "Retract your shoulder blades and press them into the bench for a stable base. Lower the dumbbells to chest level with a controlled 2-second eccentric, then drive up explosively. Avoid flaring your elbows past 45 degrees.",
			},
			{
				ID:          "tue_r2",
				Category:    domain.CategoryResistance,
				Name:        "Seated Cable Rows",
				Sets:        4,
				Reps:        "8-10",
				DefaultRest: 75,
				MuscleGroup: "Back",
				Tip:         "Sit tall with a slight forward lean at the start. Pull the handle to your lower ribcage by driving your elbows straight back. Squeeze your shoulder blades together for a full 1-second contraction before the controlled release.",
			},
			{
				ID:          "tue_r3",
				Category:    domain.CategoryResistance,
				Name:        "Overhead Dumbbell Press",
				Sets:        2,
				Reps:        "10-12",
				DefaultRest: 75,
				MuscleGroup: "Shoulders",
				Tip:         "Brace your core and avoid arching your lower back. Press dumbbells overhead in a slight arc, finishing with the weights directly above your shoulders. Lower under control to ear level.",
			},
			{
				ID:          "tue_c1",
				Category:    domain.CategoryCardio,
				Name:        "Treadmill Incline Walk",
				Duration:    "25 mins",
				DefaultRest: 0,
				Details:     "Speed 5.5-6.5 km/h, Incline 6-10%, HR 120-140 bpm",
				Tip:         "Maintain an upright posture and do NOT hold the handrails. Pump your arms naturally. This sustained Zone 2 effort forces direct fatty acid oxidation and builds aerobic base without CNS fatigue.",
			},
		},
	},
	{
		Day:       "Thursday",
		Focus:     "Lower Body & HIIT",
		TimeLimit: "Max 50 Mins",
		Sequence:  "Resistance (25 min) -> HIIT + Cardio (25 min)",
		Exercises: []domain.Exercise{
			{
				ID:          "thu_r1",
				Category:    domain.CategoryResistance,
				Name:        "Leg Press or Squats",
				Sets:        4,
				Reps:        "8-10",
				DefaultRest: 90,
				MuscleGroup: "Quads/Glutes",
				Tip:         "Place feet shoulder-width apart, toes slightly out. Lower until thighs are at least parallel to the platform. Drive through your heels and mid-foot and never let your knees cave inward.",
			},
			{
				ID:          "thu_r2",
				Category:    domain.CategoryResistance,
				Name:        "Romanian Deadlifts or Leg Curls",
				Sets:        4,
				Reps:        "8-10",
				DefaultRest: 90,
				MuscleGroup: "Hamstrings",
				Tip:         "For RDLs: push your hips back as if closing a car door behind you. Keep the bar or dumbbells dragging along your thighs. Maintain a flat back and feel a deep stretch in your hamstrings at the bottom.",
			},
			{
				ID:          "thu_r3",
				Category:    domain.CategoryResistance,
				Name:        "Planks or Cable Crunches",
				Sets:        2,
				Reps:        "To failure / 60s",
				DefaultRest: 60,
				MuscleGroup: "Core",
				Tip:         "For planks: squeeze glutes, brace abs as if about to be punched, keep a straight line from head to heels. For cable crunches: flex your spine by pulling your ribcage toward your pelvis, not by bending at the hips.",
			},
			{
				ID:          "thu_c1",
				Category:    domain.CategoryHIIT,
				Name:        "Stationary Bike Sprints",
				Duration:    "15 mins",
				DefaultRest: 0,
				Details:     "6 Rounds: 30s Max Effort (100+ RPM, Resistance 8-10) -> 60s Recovery (50-60 RPM, Resistance 3)",
				Tip:         "During sprints, stay seated and drive through the balls of your feet. Your heart rate should spike above 160 bpm. During recovery, keep pedaling slowly and never stop completely. This protocol acutely spikes growth hormone secretion.",
			},
			{
				ID:          "thu_c2",
				Category:    domain.CategoryCardio,
				Name:        "Rowing Machine",
				Duration:    "10 mins",
				DefaultRest: 0,
				Details:     "22-26 strokes/min, HR 120-140 bpm",
				Tip:         "Drive with your legs first (60% of power), then lean back slightly, and finish the pull to your lower ribs. Maintain a steady cadence. This immediately oxidizes the fatty acids mobilized by the HIIT session.",
			},
		},
	},
	{
		Day:       "Saturday",
		Focus:     "Upper Body Heavy & Cardio",
		TimeLimit: "Max 60 Mins",
		Sequence:  "Resistance (40-45 min) -> Cardio (15-20 min)",
		Exercises: []domain.Exercise{
			{
				ID:          "sat_r1",
				Category:    domain.CategoryResistance,
				Name:        "Incline Dumbbell Press",
				Sets:        3,
				Reps:        "8-10",
				DefaultRest: 90,
				MuscleGroup: "Upper Chest",
				Tip:         "Set bench to 30-45 degrees. Maintain a slight arch in your upper back. Press the dumbbells to full lockout but don't clang them at the top. Use a 3-second eccentric for maximum time under tension.",
			},
			{
				ID:          "sat_r2",
				Category:    domain.CategoryResistance,
				Name:        "Push-ups or Chest Flyes",
				Sets:        3,
				Reps:        "Near failure",
				DefaultRest: 90,
				MuscleGroup: "Chest",
				Tip:         "For push-ups: hands slightly wider than shoulders, full range of motion (chest to floor). For flyes: keep a slight bend in elbows, lower the weights in a wide arc until you feel a deep chest stretch, then squeeze together.",
			},
			{
				ID:          "sat_r3",
				Category:    domain.CategoryResistance,
				Name:        "Lat Pulldowns or Pull-ups",
				Sets:        3,
				Reps:        "8-10",
				DefaultRest: 90,
				MuscleGroup: "Back (Lats)",
				Tip:         "Lean back slightly (about 15 degrees). Pull the bar to your upper chest by driving your elbows down and back. Initiate the movement with your lats, not your biceps. Squeeze at the bottom for 1 second.",
			},
			{
				ID:          "sat_r4",
				Category:    domain.CategoryResistance,
				Name:        "Dumbbell Rows",
				Sets:        3,
				Reps:        "8-10",
				DefaultRest: 90,
				MuscleGroup: "Back (Mid)",
				Tip:         "One knee and hand on the bench for support. Pull the dumbbell toward your hip, not your chest. Keep your torso parallel to the floor and avoid rotating your body to heave the weight.",
			},
			{
				ID:          "sat_r5",
				Category:    domain.CategoryResistance,
				Name:        "Lateral Raises",
				Sets:        4,
				Reps:        "12-15",
				DefaultRest: 60,
				MuscleGroup: "Shoulders (Lateral)",
				Tip:         "Slight bend at the elbows, lift to shoulder height, not higher. Lead with your pinkies slightly to emphasize the medial deltoid. Use a controlled 2-second raise and 3-second lower. Ego-check the weight; form is king.",
			},
			{
				ID:          "sat_c1",
				Category:    domain.CategoryCardio,
				Name:        "Stationary Bike",
				Duration:    "15-20 mins",
				DefaultRest: 0,
				Details:     "70-80 RPM, HR 120-140 bpm, Resistance Lvl 4-5",
				Tip:         "Keep a tall, relaxed posture. Maintain a consistent cadence and avoid surging or slowing. This low-intensity finisher maximizes fat oxidation while keeping CNS fatigue minimal for Sunday's session.",
			},
		},
	},
	{
		Day:       "Sunday",
		Focus:     "Lower Body Heavy & Cardio",
		TimeLimit: "Max 60 Mins",
		Sequence:  "Resistance (40-45 min) -> Cardio (15-20 min)",
		Exercises: []domain.Exercise{
			{
				ID:          "sun_r1",
				Category:    domain.CategoryResistance,
				Name:        "Walking Lunges or Split Squats",
				Sets:        3,
				Reps:        "10-12 per leg",
				DefaultRest: 90,
				MuscleGroup: "Quads/Glutes",
				Tip:         "Take a long stride. Your front knee should track over your toes without collapsing inward. Lower your back knee until it nearly touches the ground. Push off through your front heel to stand.",
			},
			{
				ID:          "sun_r2",
				Category:    domain.CategoryResistance,
				Name:        "Leg Extensions",
				Sets:        3,
				Reps:        "12-15",
				DefaultRest: 60,
				MuscleGroup: "Quads",
				Tip:         "Adjust the pad so it sits on your lower shins. Extend fully and squeeze the contraction hard at the top for 1 second. Lower with a slow 3-second eccentric. Avoid swinging or using momentum.",
			},
			{
				ID:          "sun_r3",
				Category:    domain.CategoryResistance,
				Name:        "Lying Leg Curls",
				Sets:        3,
				Reps:        "10-12",
				DefaultRest: 60,
				MuscleGroup: "Hamstrings",
				Tip:         "Keep your hips pressed flat against the pad throughout. Curl the weight up by contracting your hamstrings, not by lifting your hips. Squeeze at the top, then lower under strict control.",
			},
			{
				ID:          "sun_r4",
				Category:    domain.CategoryResistance,
				Name:        "Glute Bridges or Hip Thrusts",
				Sets:        3,
				Reps:        "12-15",
				DefaultRest: 60,
				MuscleGroup: "Glutes",
				Tip:         "Drive through your heels and squeeze your glutes at the top for 2 seconds. Keep your chin tucked and ribs down to avoid hyperextending your lower back. Use a barbell pad for comfort under heavier loads.",
			},
			{
				ID:          "sun_r5",
				Category:    domain.CategoryResistance,
				Name:        "Hanging Leg Raises or Crunches",
				Sets:        3,
				Reps:        "To failure",
				DefaultRest: 60,
				MuscleGroup: "Core",
				Tip:         "For leg raises: curl your pelvis upward at the top of the movement. For crunches: focus on lifting your shoulder blades off the floor using your abs, not pulling on your neck.",
			},
			{
				ID:          "sun_c1",
				Category:    domain.CategoryCardio,
				Name:        "Treadmill Incline Walk",
				Duration:    "15-20 mins",
				DefaultRest: 0,
				Details:     "Speed 5.5-6.5 km/h, Incline 8-12%, HR 120-140 bpm",
				Tip:         "End your week strong with an aggressive incline. Keep arms free, maintain upright posture. This final Zone 2 session maximizes the metabolic afterburn from your Sunday resistance volume.",
			},
		},
	},
}
