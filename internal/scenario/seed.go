package scenario

import "github.com/malikacodes/nursing-game/internal/nurse"

// Seed returns the built-in scenario content. Entries without a Tier are
// drawn in every game; specialty content is split by tier.
func Seed() []Definition {
	return []Definition{
		// Shared by both tiers.
		{
			ID:          "morning-medication-round",
			Title:       "Morning Medication Round",
			Description: "During medication administration, you notice a patient's medication dosage seems higher than usual. What do you do?",
			Difficulty:  1,
			Shift:       Day,
			Options: []OptionDefinition{
				{
					Label:   "Double-check the medication order in the system",
					Outcome: OutcomeDefinition{Description: "You found a prescription error and prevented a medication incident, but it delayed your other tasks.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
					FollowUp: &Definition{
						ID:          "medication-error-prevention",
						Title:       "Medication Error Prevention",
						Description: "After finding the dosage error, what's your next step?",
						Difficulty:  1,
						Options: []OptionDefinition{
							{
								Label:   "Document the near-miss and report it to pharmacy",
								Outcome: OutcomeDefinition{Description: "This improves system safety but takes time from patient care.", Knowledge: 2, PatientCare: -2, Efficiency: 2, Stress: -2},
							},
							{
								Label:   "Just correct the order and move on to patients",
								Outcome: OutcomeDefinition{Description: "You saved time but missed improving system safety.", Knowledge: -2, PatientCare: 2, Efficiency: -2, Stress: 2},
							},
						},
					},
				},
				{
					Label:   "Administer the medication as written to stay on schedule",
					Outcome: OutcomeDefinition{Description: "You maintained efficiency but missed a potential error.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:          "family-conference",
			Title:       "Family Conference",
			Description: "A patient's family is demanding to speak with the doctor about their care plan. The doctor is currently in a procedure.",
			Difficulty:  2,
			Shift:       Day,
			Options: []OptionDefinition{
				{
					Label:   "Listen to their concerns and explain you'll coordinate with the doctor when available",
					Outcome: OutcomeDefinition{Description: "The family feels heard, but other tasks got delayed.", Knowledge: -2, PatientCare: 2, Efficiency: -2, Stress: 2},
				},
				{
					Label:   "Tell them to wait and focus on completing your scheduled tasks",
					Outcome: OutcomeDefinition{Description: "You stayed on schedule but the family is upset.", Knowledge: 2, PatientCare: -2, Efficiency: 2, Stress: -2},
				},
			},
		},
		{
			ID:          "night-round-assessment",
			Title:       "Night Round Assessment",
			Description: "At 2 AM, your patient complains they can't sleep due to anxiety. Their vital signs are stable.",
			Difficulty:  1,
			Shift:       Night,
			Options: []OptionDefinition{
				{
					Label:   "Spend time talking with the patient about their concerns",
					Outcome: OutcomeDefinition{Description: "Patient feels better but you fell behind on documentation.", Knowledge: -2, PatientCare: 2, Efficiency: -2, Stress: 2},
				},
				{
					Label:   "Focus on completing your charting and request sleep medication",
					Outcome: OutcomeDefinition{Description: "Documentation is complete but patient satisfaction decreased.", Knowledge: 2, PatientCare: -2, Efficiency: 2, Stress: -2},
				},
			},
		},

		// Intensive care.
		{
			ID:              "early-signs-of-deterioration",
			Title:           "Early Signs of Deterioration",
			Description:     "Your intubated patient, admitted for sepsis, has stable vitals but suddenly becomes tachycardic (HR 120) and hypotensive (BP 80/50). The SpO2 remains at 97%.",
			Difficulty:      2,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Increase IV fluids and reassess in 15 minutes",
					Outcome: OutcomeDefinition{Description: "Patient stabilizes, but the underlying cause is not fully addressed.", Knowledge: 5, PatientCare: 5, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Call the provider and request a sepsis reassessment",
					Outcome: OutcomeDefinition{Description: "Early recognition leads to proper management, preventing further decline.", Knowledge: 10, PatientCare: 5, Efficiency: -5, Stress: 5},
				},
			},
		},
		{
			ID:              "ventilator-alarm-management",
			Title:           "Ventilator Alarm Management",
			Description:     "A patient on mechanical ventilation is suddenly triggering a high-pressure alarm. The respiratory therapist is unavailable for 10 minutes.",
			Difficulty:      2,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Check for mucus plugging and attempt suctioning",
					Outcome: OutcomeDefinition{Description: "Suctioning improves compliance, reducing the alarm.", Knowledge: 10, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Silence the alarm and wait for the respiratory therapist",
					Outcome: OutcomeDefinition{Description: "Patient's condition worsens, and their oxygen saturation drops.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "vasopressor-management",
			Title:           "Vasopressor Management",
			Description:     "Your patient is on a norepinephrine drip for blood pressure support. The blood pressure has increased from 80/40 to 150/90.",
			Difficulty:      2,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Titrate the norepinephrine down and monitor BP",
					Outcome: OutcomeDefinition{Description: "BP stabilizes, avoiding potential hypertension.", Knowledge: 10, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Leave the drip rate unchanged and reassess in an hour",
					Outcome: OutcomeDefinition{Description: "Hypertension worsens, leading to further interventions.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "sedation-level-assessment",
			Title:           "Sedation Level Assessment",
			Description:     "Your intubated patient is receiving continuous propofol sedation. The Richmond Agitation-Sedation Scale (RASS) is -4, but the physician ordered light sedation (RASS -2).",
			Difficulty:      2,
			Shift:           Night,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Reduce the sedation per protocol and monitor response",
					Outcome: OutcomeDefinition{Description: "Patient becomes more alert and follows commands.", Knowledge: 10, PatientCare: 10, Efficiency: 5, Stress: -5},
				},
				{
					Label:   "Keep sedation unchanged and reassess later",
					Outcome: OutcomeDefinition{Description: "Prolonged deep sedation delays extubation.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "acute-respiratory-distress",
			Title:           "Acute Respiratory Distress",
			Description:     "A post-surgical ICU patient suddenly develops acute shortness of breath, tachypnea (RR 30), and a drop in SpO2 (88%). You suspect a pulmonary embolism (PE).",
			Difficulty:      2,
			Shift:           Night,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Call the Rapid Response Team and prepare for intervention",
					Outcome: OutcomeDefinition{Description: "Early intervention prevents further deterioration.", Knowledge: 10, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Increase oxygen and wait to see if symptoms resolve",
					Outcome: OutcomeDefinition{Description: "Delayed diagnosis results in hemodynamic instability.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "ventilator-weaning-challenge",
			Title:           "Ventilator Weaning Challenge",
			Description:     "Your ICU patient, previously sedated and ventilated for respiratory failure, is now on minimal ventilator support. The provider orders a spontaneous breathing trial (SBT), but the patient appears mildly tachypneic after 10 minutes.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Stop the SBT and notify the provider",
					Outcome: OutcomeDefinition{Description: "Extubation is delayed, but the patient avoids respiratory distress.", Knowledge: 10, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Encourage the patient to continue the trial",
					Outcome: OutcomeDefinition{Description: "The patient fatigues, leading to a failed extubation attempt.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "managing-a-septic-shock-crisis",
			Title:           "Managing a Septic Shock Crisis",
			Description:     "A post-op ICU patient with sepsis is hypotensive (BP 75/40) despite IV fluids and norepinephrine. The provider has not yet placed orders for additional interventions.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Request vasopressin as a second-line agent",
					Outcome: OutcomeDefinition{Description: "Blood pressure stabilizes with multimodal vasopressor therapy.", Knowledge: 15, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Continue IV fluids aggressively",
					Outcome: OutcomeDefinition{Description: "Fluid overload leads to pulmonary edema.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "acute-neurological-decline",
			Title:           "Acute Neurological Decline",
			Description:     "A neuro ICU patient post-aneurysm coiling suddenly develops unequal pupils and a drop in GCS (Glasgow Coma Scale).",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Elevate the head of the bed, perform a neuro exam, and call neurosurgery",
					Outcome: OutcomeDefinition{Description: "Prompt response prevents further deterioration.", Knowledge: 10, PatientCare: 15, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Administer pain medications and reassess in 30 minutes",
					Outcome: OutcomeDefinition{Description: "Delayed intervention results in permanent neurological damage.", Knowledge: -10, PatientCare: -15, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "multi-organ-failure-management",
			Title:           "Multi-Organ Failure Management",
			Description:     "A patient with worsening acute kidney injury (AKI) now has elevated potassium (K+ 6.5) and peaked T-waves on ECG. The nephrologist is unavailable for 20 minutes.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Administer calcium gluconate and insulin/glucose per protocol",
					Outcome: OutcomeDefinition{Description: "Hyperkalemia is corrected, avoiding arrhythmias.", Knowledge: 15, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Call nephrology and wait for dialysis",
					Outcome: OutcomeDefinition{Description: "Delayed treatment leads to ventricular fibrillation.", Knowledge: -10, PatientCare: -15, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "pulmonary-embolism-response",
			Title:           "Pulmonary Embolism Response",
			Description:     "A post-op ICU patient suddenly develops acute shortness of breath, tachypnea (RR 30), and a drop in SpO2 (88%). You suspect a pulmonary embolism (PE).",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Call the Rapid Response Team and prepare for intervention",
					Outcome: OutcomeDefinition{Description: "Early intervention prevents further deterioration.", PatientCare: 3, Efficiency: -2, Stress: 2},
				},
				{
					Label:   "Increase oxygen and wait to see if symptoms resolve",
					Outcome: OutcomeDefinition{Description: "Delayed diagnosis results in hemodynamic instability.", PatientCare: -3, Efficiency: 2, Stress: -1},
				},
			},
		},
		{
			ID:              "icu-code-leadership",
			Title:           "ICU Code Leadership",
			Description:     "During your shift, a patient in the next room goes into cardiac arrest. The charge nurse is unavailable, and you are the most senior nurse in the area.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Take control, assign roles, and lead the code",
					Outcome: OutcomeDefinition{Description: "The code runs smoothly, and the patient regains circulation.", Knowledge: 15, PatientCare: 15, Efficiency: 10, Stress: 10},
				},
				{
					Label:   "Wait for the charge nurse or provider to arrive",
					Outcome: OutcomeDefinition{Description: "Delayed interventions lead to prolonged downtime and worsened prognosis.", Knowledge: -10, PatientCare: -15, Efficiency: 5, Stress: 5},
				},
			},
		},
		{
			ID:              "ethics-and-family-disagreement",
			Title:           "Ethics and Family Disagreement",
			Description:     "A critically ill patient on multiple vasopressors and mechanical ventilation is showing signs of irreversible multi-organ failure. The family is divided on continuing aggressive treatment versus comfort measures.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Arrange a multidisciplinary family meeting with an ethics consult",
					Outcome: OutcomeDefinition{Description: "A consensus is reached, reducing family distress.", Knowledge: 10, PatientCare: 10, Efficiency: -5, Stress: 10},
				},
				{
					Label:   "Continue aggressive treatment and defer the conversation",
					Outcome: OutcomeDefinition{Description: "Patient remains on futile treatment, increasing distress for staff and family.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 15},
				},
			},
		},
		{
			ID:              "high-pressure-ventilator-alarm",
			Title:           "High-Pressure Ventilator Alarm",
			Description:     "A patient on mechanical ventilation suddenly triggers a high-pressure alarm. The respiratory therapist is not available for 10 minutes.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Check for mucus plugging and attempt suctioning",
					Outcome: OutcomeDefinition{Description: "Suctioning improves compliance, reducing the alarm.", Knowledge: 10, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Silence the alarm and wait for the respiratory therapist",
					Outcome: OutcomeDefinition{Description: "The patient's condition worsens, leading to an oxygen desaturation event.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "post-intubation-hypotension",
			Title:           "Post-Intubation Hypotension",
			Description:     "A septic patient was just intubated and is now showing a drop in blood pressure (70/40). The intensivist is managing another unstable patient.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Start a vasopressor infusion per protocol",
					Outcome: OutcomeDefinition{Description: "The blood pressure stabilizes, preventing further deterioration.", Knowledge: 15, PatientCare: 10, Efficiency: -5, Stress: 5},
				},
				{
					Label:   "Give a fluid bolus and reassess in 10 minutes",
					Outcome: OutcomeDefinition{Description: "BP remains low, and the patient develops worsening shock.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},
		{
			ID:              "managing-delirium-in-the-icu",
			Title:           "Managing Delirium in the ICU",
			Description:     "An elderly patient with sepsis and respiratory failure has been on mechanical ventilation for five days. Today, they are agitated, pulling at their ET tube, and exhibiting ICU delirium.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ICU},
			Options: []OptionDefinition{
				{
					Label:   "Attempt non-pharmacologic interventions first",
					Outcome: OutcomeDefinition{Description: "The patient calms down without additional sedation.", Knowledge: 10, PatientCare: 15, Efficiency: -5, Stress: -5},
				},
				{
					Label:   "Increase sedation and restrain the patient",
					Outcome: OutcomeDefinition{Description: "The patient is calmer, but deeper sedation delays ventilator weaning.", Knowledge: -5, PatientCare: -10, Efficiency: 5, Stress: 10},
				},
			},
		},

		// Emergency.
		{
			ID:              "triage-assessment",
			Title:           "Triage Assessment",
			Description:     "Two patients arrive: an elderly person with chest pain and a child with a fever of 101°F. Who do you assess first?",
			Difficulty:      1,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ER},
			Options: []OptionDefinition{
				{
					Label:   "Elderly patient with chest pain",
					Outcome: OutcomeDefinition{Description: "Correct triage priority but anxious parent waiting.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Child with fever",
					Outcome: OutcomeDefinition{Description: "Parent satisfied but delayed critical assessment.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "simple-trauma",
			Title:           "Simple Trauma",
			Description:     "A patient arrives with a laceration to their arm. Bleeding is controlled but they're anxious.",
			Difficulty:      1,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ER},
			Options: []OptionDefinition{
				{
					Label:   "Complete full set of vitals before cleaning wound",
					Outcome: OutcomeDefinition{Description: "Thorough assessment but increased patient anxiety.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Clean wound first to reassure patient",
					Outcome: OutcomeDefinition{Description: "Patient calmer but baseline assessment delayed.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "intoxicated-patient",
			Title:           "Intoxicated Patient",
			Description:     "An intoxicated patient is becoming verbally aggressive with staff.",
			Difficulty:      1,
			Shift:           Night,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.ER},
			Options: []OptionDefinition{
				{
					Label:   "Call security and establish clear boundaries",
					Outcome: OutcomeDefinition{Description: "Safe approach but escalated patient agitation.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Try to de-escalate situation yourself",
					Outcome: OutcomeDefinition{Description: "Maintained calm but risked personal safety.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "mass-casualty-incident",
			Title:           "Mass Casualty Incident",
			Description:     "Three critical trauma patients arrive simultaneously. One has tension pneumothorax symptoms.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ER},
			Options: []OptionDefinition{
				{
					Label:   "Focus on pneumothorax patient and delegate others",
					Outcome: OutcomeDefinition{Description: "Saved critical patient but delayed team organization.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Quickly triage all three and assign teams",
					Outcome: OutcomeDefinition{Description: "Good team coordination but delayed individual care.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "cardiac-emergency",
			Title:           "Cardiac Emergency",
			Description:     "Code STEMI arrives. Cath lab is ready but patient develops V-tach during handoff.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ER},
			Options: []OptionDefinition{
				{
					Label:   "Start ACLS protocol and delay transfer",
					Outcome: OutcomeDefinition{Description: "Immediate rhythm management but delayed reperfusion.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Rapid transfer to cath lab with escort",
					Outcome: OutcomeDefinition{Description: "Quick reperfusion but risky transport.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "pediatric-emergency",
			Title:           "Pediatric Emergency",
			Description:     "4-year-old seizing patient arrives. IV access is difficult and parents are distraught.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.ER},
			Options: []OptionDefinition{
				{
					Label:   "Attempt IV while another nurse gives IM medication",
					Outcome: OutcomeDefinition{Description: "Comprehensive care but delayed family support.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Give IM medication first and reassure family",
					Outcome: OutcomeDefinition{Description: "Quick symptom control but delayed IV access.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},

		// Medical-surgical.
		{
			ID:              "first-post-op-assessment",
			Title:           "First Post-Op Assessment",
			Description:     "Your post-appendectomy patient complains of 6/10 pain at the incision site.",
			Difficulty:      1,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.MedSurg},
			Options: []OptionDefinition{
				{
					Label:   "Complete full assessment before giving pain meds",
					Outcome: OutcomeDefinition{Description: "Thorough care but delayed pain relief.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Give pain medication first then assess",
					Outcome: OutcomeDefinition{Description: "Quick comfort but missed baseline assessment.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "discharge-teaching",
			Title:           "Discharge Teaching",
			Description:     "Your diabetic patient is being discharged but seems unsure about insulin administration.",
			Difficulty:      1,
			Shift:           Day,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.MedSurg},
			Options: []OptionDefinition{
				{
					Label:   "Spend extra time teaching and have them demonstrate",
					Outcome: OutcomeDefinition{Description: "Good education but fell behind on other tasks.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Provide handouts and quick overview to stay on schedule",
					Outcome: OutcomeDefinition{Description: "Maintained schedule but risked patient compliance.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "new-admission",
			Title:           "New Admission",
			Description:     "You receive a new admission at 2 AM while all your other patients are stable.",
			Difficulty:      1,
			Shift:           Night,
			Tier:            nurse.NewGrad,
			Specializations: []nurse.Specialization{nurse.MedSurg},
			Options: []OptionDefinition{
				{
					Label:   "Complete full admission process now",
					Outcome: OutcomeDefinition{Description: "Thorough admission but disrupted other patients' sleep.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Quick safety checks and complete paperwork later",
					Outcome: OutcomeDefinition{Description: "Maintained quiet but delayed important documentation.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "post-op-complication",
			Title:           "Post-Op Complication",
			Description:     "Your post-colectomy patient develops rapid atrial fibrillation and complains of shortness of breath.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.MedSurg},
			Options: []OptionDefinition{
				{
					Label:   "Start oxygen and call rapid response",
					Outcome: OutcomeDefinition{Description: "Quick escalation but created unit chaos.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Assess thoroughly before calling rapid response",
					Outcome: OutcomeDefinition{Description: "Detailed assessment but delayed intervention.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "sepsis-alert",
			Title:           "Sepsis Alert",
			Description:     "Your pneumonia patient meets sepsis criteria but is refusing additional IV access.",
			Difficulty:      3,
			Shift:           Day,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.MedSurg},
			Options: []OptionDefinition{
				{
					Label:   "Take time to educate and gain cooperation",
					Outcome: OutcomeDefinition{Description: "Patient agreement gained but delayed treatment.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Call provider for alternative approach",
					Outcome: OutcomeDefinition{Description: "Maintained timeline but missed education opportunity.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
		{
			ID:              "acute-mental-status-change",
			Title:           "Acute Mental Status Change",
			Description:     "Your elderly patient becomes suddenly confused and tries to leave the unit at 3 AM.",
			Difficulty:      3,
			Shift:           Night,
			Tier:            nurse.Experienced,
			Specializations: []nurse.Specialization{nurse.MedSurg},
			Options: []OptionDefinition{
				{
					Label:   "Full delirium assessment and family notification",
					Outcome: OutcomeDefinition{Description: "Comprehensive care but increased unit disruption.", Knowledge: 2, PatientCare: 2, Efficiency: -2, Stress: -2},
				},
				{
					Label:   "Redirect patient and monitor closely",
					Outcome: OutcomeDefinition{Description: "Maintained calm but delayed full workup.", Knowledge: -2, PatientCare: -2, Efficiency: 2, Stress: 2},
				},
			},
		},
	}
}
