package catalog

// records is the built-in symptom table. Read-only at runtime.
var records = []Record{
	{
		ID:              "cold-flu",
		Name:            "Cold/Flu Symptoms",
		Keywords:        []string{"cold", "flu", "runny nose", "sore throat", "fever", "coughing"},
		RelatedSymptoms: []string{"headache", "fatigue", "body aches"},
		Severity: SeverityDescriptions{
			Mild:     "Mild discomfort with minimal impact on daily activities",
			Moderate: "Noticeable symptoms affecting daily activities",
			Severe:   "High fever, severe cough, or difficulty breathing",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Rest and get plenty of sleep",
				"Stay hydrated with water and warm fluids",
				"Try herbal teas with honey",
				"Use throat lozenges for sore throat",
				"Take over-the-counter cold medications",
			},
			WhenToSeekHelp: []string{
				"Fever persists over 3 days",
				"Symptoms worsen after 7 days",
				"Difficulty breathing",
				"Severe chest pain",
			},
			UrgentCare: []string{
				"High fever above 103°F (39.4°C)",
				"Severe difficulty breathing",
				"Chest pain or pressure",
				"Severe weakness or dizziness",
			},
		},
	},
	{
		ID:              "headache",
		Name:            "Headache",
		Keywords:        []string{"headache", "migraine", "head pain", "tension headache"},
		RelatedSymptoms: []string{"nausea", "sensitivity to light", "dizziness"},
		Severity: SeverityDescriptions{
			Mild:     "Mild discomfort that doesn't interfere with activities",
			Moderate: "Noticeable pain affecting concentration",
			Severe:   "Intense pain preventing normal activities",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Rest in a quiet, dark room",
				"Apply cold or warm compress",
				"Stay hydrated",
				"Practice relaxation techniques",
				"Take over-the-counter pain relievers",
			},
			WhenToSeekHelp: []string{
				"Headaches become more frequent",
				"Pain is not relieved by medication",
				"Headache interferes with daily life",
			},
			UrgentCare: []string{
				"Sudden, severe headache",
				"Headache with confusion or difficulty speaking",
				"Headache with fever and stiff neck",
			},
		},
	},
	{
		ID:              "nausea",
		Name:            "Nausea",
		Keywords:        []string{"nausea", "vomiting", "upset stomach", "queasy"},
		RelatedSymptoms: []string{"dizziness", "headache", "stomach pain"},
		Severity: SeverityDescriptions{
			Mild:     "Occasional queasiness without vomiting",
			Moderate: "Frequent nausea with some vomiting",
			Severe:   "Persistent vomiting, unable to keep fluids down",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Sip clear fluids slowly",
				"Try ginger tea or peppermint tea",
				"Eat small, bland meals",
				"Avoid strong odors",
				"Rest in a seated position",
			},
			WhenToSeekHelp: []string{
				"Symptoms last more than 24 hours",
				"Unable to keep liquids down",
				"Signs of dehydration",
			},
			UrgentCare: []string{
				"Severe abdominal pain",
				"Blood in vomit",
				"Severe dehydration",
			},
		},
	},
	{
		ID:              "digestive-issues",
		Name:            "Digestive Issues",
		Keywords:        []string{"bloating", "gas", "indigestion", "stomach discomfort"},
		RelatedSymptoms: []string{"nausea", "abdominal pain", "changes in appetite"},
		Severity: SeverityDescriptions{
			Mild:     "Occasional discomfort that passes quickly",
			Moderate: "Regular discomfort affecting daily activities",
			Severe:   "Intense pain or persistent symptoms",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Drink peppermint or chamomile tea",
				"Apply warm compress to abdomen",
				"Take gentle walks after meals",
				"Avoid carbonated drinks",
				"Eat slowly and chew thoroughly",
			},
			WhenToSeekHelp: []string{
				"Symptoms persist for several days",
				"Significant changes in bowel habits",
				"Unexplained weight loss",
			},
			UrgentCare: []string{
				"Severe abdominal pain",
				"Blood in stool",
				"High fever with symptoms",
			},
		},
	},
	{
		ID:              "allergies",
		Name:            "Seasonal Allergies",
		Keywords:        []string{"allergies", "hay fever", "sneezing", "itchy eyes"},
		RelatedSymptoms: []string{"runny nose", "congestion", "coughing"},
		Severity: SeverityDescriptions{
			Mild:     "Occasional symptoms that don't interfere with activities",
			Moderate: "Regular symptoms affecting daily life",
			Severe:   "Significant impact on breathing or daily activities",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Stay indoors during high pollen counts",
				"Use air purifiers",
				"Try saline nasal rinses",
				"Take over-the-counter antihistamines",
				"Keep windows closed during high pollen times",
			},
			WhenToSeekHelp: []string{
				"Symptoms significantly impact quality of life",
				"Over-the-counter medications aren't helping",
				"Developing new allergy symptoms",
			},
			UrgentCare: []string{
				"Difficulty breathing",
				"Severe allergic reaction",
				"Swelling of face or throat",
			},
		},
	},
	{
		ID:              "muscle-strain",
		Name:            "Muscle Strain",
		Keywords:        []string{"strain", "pulled muscle", "muscle pain", "sprain"},
		RelatedSymptoms: []string{"swelling", "stiffness", "limited mobility"},
		Severity: SeverityDescriptions{
			Mild:     "Minor discomfort with full range of motion",
			Moderate: "Pain with some limitation of movement",
			Severe:   "Significant pain and limited mobility",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Apply RICE method (Rest, Ice, Compression, Elevation)",
				"Take over-the-counter pain relievers",
				"Gentle stretching when appropriate",
				"Avoid strenuous activity",
				"Use proper support when moving",
			},
			WhenToSeekHelp: []string{
				"Pain persists beyond a week",
				"Significant swelling",
				"Unable to bear weight or move normally",
			},
			UrgentCare: []string{
				"Severe pain with minimal movement",
				"Obvious deformity",
				"Complete loss of function",
			},
		},
	},
	{
		ID:              "skin-irritation",
		Name:            "Skin Irritation",
		Keywords:        []string{"rash", "itching", "skin irritation", "dermatitis"},
		RelatedSymptoms: []string{"redness", "swelling", "dry skin"},
		Severity: SeverityDescriptions{
			Mild:     "Minor irritation without significant discomfort",
			Moderate: "Noticeable discomfort affecting daily activities",
			Severe:   "Intense irritation or spreading rash",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Apply cool compress",
				"Use gentle, fragrance-free moisturizer",
				"Take an oatmeal bath",
				"Avoid scratching",
				"Wear loose, cotton clothing",
			},
			WhenToSeekHelp: []string{
				"Rash spreads or worsens",
				"Signs of infection",
				"Symptoms persist beyond a week",
			},
			UrgentCare: []string{
				"Severe allergic reaction",
				"Rash with fever",
				"Blistering or open sores",
			},
		},
	},
	{
		ID:              "anxiety",
		Name:            "Anxiety",
		Keywords:        []string{"anxiety", "stress", "worry", "panic"},
		RelatedSymptoms: []string{"restlessness", "difficulty concentrating", "sleep problems"},
		Severity: SeverityDescriptions{
			Mild:     "Occasional worry that passes quickly",
			Moderate: "Regular anxiety affecting daily activities",
			Severe:   "Intense anxiety or panic attacks",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Practice deep breathing exercises",
				"Try meditation or mindfulness",
				"Regular physical exercise",
				"Maintain a routine",
				"Get adequate sleep",
			},
			WhenToSeekHelp: []string{
				"Anxiety interferes with daily life",
				"Developing physical symptoms",
				"Unable to control worry",
			},
			UrgentCare: []string{
				"Thoughts of self-harm",
				"Severe panic attacks",
				"Unable to function normally",
			},
		},
	},
	{
		ID:              "fatigue",
		Name:            "Fatigue",
		Keywords:        []string{"tired", "exhausted", "fatigue", "low energy"},
		RelatedSymptoms: []string{"weakness", "difficulty concentrating", "mood changes"},
		Severity: SeverityDescriptions{
			Mild:     "Temporary tiredness that improves with rest",
			Moderate: "Regular fatigue affecting daily activities",
			Severe:   "Extreme exhaustion preventing normal activities",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Maintain a regular sleep schedule",
				"Eat a balanced diet",
				"Regular moderate exercise",
				"Reduce caffeine intake",
				"Take short rest breaks during the day",
			},
			WhenToSeekHelp: []string{
				"Fatigue persists despite adequate rest",
				"Accompanied by other symptoms",
				"Significant impact on daily life",
			},
			UrgentCare: []string{
				"Sudden, severe fatigue",
				"Inability to stay awake",
				"Accompanied by chest pain or difficulty breathing",
			},
		},
	},
	{
		ID:              "insomnia",
		Name:            "Insomnia",
		Keywords:        []string{"insomnia", "can't sleep", "sleepless", "trouble sleeping"},
		RelatedSymptoms: []string{"fatigue", "irritability", "difficulty concentrating"},
		Severity: SeverityDescriptions{
			Mild:     "Occasional difficulty sleeping",
			Moderate: "Regular sleep problems affecting daily life",
			Severe:   "Chronic inability to sleep",
		},
		Recommendations: Recommendations{
			SelfCare: []string{
				"Establish a regular bedtime routine",
				"Create a comfortable sleep environment",
				"Limit screen time before bed",
				"Try relaxation techniques",
				"Avoid caffeine in the evening",
			},
			WhenToSeekHelp: []string{
				"Sleep problems persist for weeks",
				"Affecting work or daily activities",
				"Developing other health issues",
			},
			UrgentCare: []string{
				"Complete inability to sleep for several days",
				"Severe mental health symptoms",
				"Physical symptoms of exhaustion",
			},
		},
	},
}
