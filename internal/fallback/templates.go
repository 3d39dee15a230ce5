package fallback

// Canned topic answers, pre-written in both response languages. Keyed by
// language tag; "en" and "hi" entries must stay in lockstep.

var covidTemplates = map[string]string{
	"en": `COVID-19 Symptoms and Prevention:

🦠 Main Symptoms:
• Fever
• Dry cough
• Difficulty breathing
• Sore throat
• Loss of taste and smell
• Fatigue

🛡️ Prevention:
• Wear masks
• Maintain 6 feet distance
• Wash hands frequently (20 seconds)
• Avoid crowds
• Get vaccinated

⚠️ Seek immediate medical attention for severe symptoms.`,
	"hi": `COVID-19 के लक्षण और बचाव:

🦠 मुख्य लक्षण:
• बुखार
• सूखी खांसी
• सांस लेने में कठिनाई
• गले में खराश
• स्वाद और गंध का चले जाना
• थकान

🛡️ बचाव के उपाय:
• मास्क पहनें
• 6 फीट की दूरी बनाए रखें
• बार-बार हाथ धोएं (20 सेकंड)
• भीड़ से बचें
• वैक्सीन लगवाएं

⚠️ गंभीर लक्षण होने पर तुरंत डॉक्टर से संपर्क करें।`,
}

var feverTemplates = map[string]string{
	"en": `Fever Treatment and Care:

🌡️ Fever Causes:
• Infections (viral/bacterial)
• Dengue/Malaria
• Typhoid
• COVID-19

💊 Home Treatment:
• Take adequate rest
• Drink plenty of fluids
• Eat light food
• Sponge with lukewarm water
• Take paracetamol if needed

⚠️ See doctor immediately if:
• Fever above 102°F
• Fever for more than 3 days
• Difficulty breathing
• Dizziness or fainting`,
	"hi": `बुखार का उपचार और देखभाल:

🌡️ बुखार के कारण:
• संक्रमण (वायरल/बैक्टीरियल)
• डेंगू/मलेरिया
• टाइफाइड
• COVID-19

💊 घरेलू उपचार:
• पर्याप्त आराम करें
• अधिक तरल पदार्थ पिएं
• हल्का भोजन लें
• गुनगुने पानी से पोंछें
• पैरासिटामोल ले सकते हैं

⚠️ तुरंत डॉक्टर से मिलें यदि:
• 102°F से ज्यादा बुखार
• 3 दिन से ज्यादा बुखार
• सांस लेने में दिक्कत
• चक्कर आना या बेहोशी`,
}

var diabetesTemplates = map[string]string{
	"en": `Diabetes Information:

🩺 Symptoms:
• Frequent urination
• Excessive thirst
• Increased hunger
• Weight loss
• Fatigue
• Slow wound healing

🍎 Diet Suggestions:
• Avoid sugar and sweets
• Eat whole grains
• Include green vegetables
• Maintain regular meal times

💊 Management:
• Take medicines regularly
• Exercise daily
• Monitor blood sugar
• Regular doctor visits

⚠️ Seek immediate help if blood sugar is very low or high.`,
	"hi": `मधुमेह (डायबिटीज) की जानकारी:

🩺 लक्षण:
• बार-बार पेशाब आना
• अधिक प्यास लगना
• भूख बढ़ना
• वजन कम होना
• थकान
• घाव धीरे भरना

🍎 आहार सुझाव:
• चीनी और मिठाई से बचें
• साबुत अनाज खाएं
• हरी सब्जियां शामिल करें
• नियमित भोजन का समय रखें

💊 नियंत्रण:
• नियमित दवा लें
• रोज व्यायाम करें
• ब्लड शुगर चेक करें
• डॉक्टर से मिलते रहें

⚠️ तत्काल सहायता यदि ब्लड शुगर बहुत कम या ज्यादा हो।`,
}

var pregnancyTemplates = map[string]string{
	"en": `Pregnancy Care:

🤱 Important Tips:
• Regular prenatal checkups
• Take folic acid
• Take iron supplements
• Eat balanced diet
• Avoid smoking and alcohol

🍎 Diet:
• Milk and dairy products
• Green leafy vegetables
• Fruits
• Protein-rich foods
• Adequate water

⚠️ See doctor immediately if:
• Bleeding
• Severe abdominal pain
• Severe headache
• Fever
• Persistent vomiting`,
	"hi": `गर्भावस्था की देखभाल:

🤱 महत्वपूर्ण सुझाव:
• नियमित चेकअप कराएं
• फोलिक एसिड लें
• आयरन की गोलियां लें
• संतुलित आहार लें
• धूम्रपान-शराब से बचें

🍎 आहार:
• दूध और दूध के उत्पाद
• हरी पत्तेदार सब्जियां
• फल
• प्रोटीन युक्त भोजन
• पर्याप्त पानी

⚠️ तुरंत डॉक्टर से मिलें यदि:
• खून आना
• तेज पेट दर्द
• तेज सिरदर्द
• बुखार
• उल्टी रुकना नहीं`,
}

var bloodPressureTemplates = map[string]string{
	"en": `High Blood Pressure (Hypertension):

🩺 Symptoms:
• Headache
• Dizziness
• Chest pain
• Shortness of breath
• Nosebleeds

🥗 Lifestyle Changes:
• Reduce salt intake
• Maintain healthy weight
• Regular exercise
• Quit smoking
• Reduce stress
• Get adequate sleep

📊 Normal Range: 120/80 mmHg
📊 High: Above 140/90 mmHg

⚠️ If above 180/120, go to hospital immediately.`,
	"hi": `उच्च रक्तचाप (हाई ब्लड प्रेशर):

🩺 लक्षण:
• सिरदर्द
• चक्कर आना
• सीने में दर्द
• सांस फूलना
• नकसीर आना

🥗 जीवनशैली बदलाव:
• नमक कम करें
• वजन नियंत्रित करें
• नियमित व्यायाम
• धूम्रपान छोड़ें
• तनाव कम करें
• पर्याप्त नींद लें

📊 सामान्य रेंज: 120/80 mmHg
📊 उच्च: 140/90 mmHg से ज्यादा

⚠️ अगर 180/120 से ज्यादा हो तो तुरंत अस्पताल जाएं।`,
}

var mentalHealthTemplates = map[string]string{
	"en": `Mental Health Care:

🧠 Common Issues:
• Depression
• Anxiety
• Stress
• Sleep problems

💪 Improvement Tips:
• Regular exercise
• Yoga and meditation
• Talk to family/friends
• Spend time on hobbies
• Get adequate sleep
• Eat healthy diet

📞 Where to Get Help:
• Family doctor
• Psychologist/Psychiatrist
• Helpline: 91-9152987821

⚠️ If having suicidal thoughts, seek immediate help.`,
	"hi": `मानसिक स्वास्थ्य की देखभाल:

🧠 सामान्य समस्याएं:
• अवसाद (डिप्रेशन)
• चिंता (एंग्जायटी)
• तनाव
• नींद की समस्या

💪 सुधार के उपाय:
• नियमित व्यायाम करें
• योग और ध्यान
• परिवार-दोस्तों से बात करें
• शौक में समय बिताएं
• पर्याप्त नींद लें
• स्वस्थ आहार लें

📞 मदद कहाँ से मिले:
• पारिवारिक डॉक्टर
• मनोवैज्ञानिक/साइकोलॉजिस्ट
• हेल्पलाइन: 91-9152987821

⚠️ आत्महत्या के विचार आने पर तुरंत मदद लें।`,
}

var firstAidTemplates = map[string]string{
	"en": `First Aid Emergency Care:

🩹 Minor Injuries:
• Clean wound with water
• Apply antiseptic
• Bandage the wound
• Get tetanus injection

🔥 Burns:
• Immediately put in cold water
• Don't use ice
• Don't apply butter or oil
• See a doctor

🤕 Fainting:
• Keep head down, legs up
• Move to ventilated area
• Sprinkle water on face
• Call 108

☎️ Emergency Numbers: 108, 102`,
	"hi": `प्राथमिक चिकित्सा (First Aid):

🩹 मामूली चोट:
• घाव को साफ पानी से धोएं
• एंटीसेप्टिक लगाएं
• पट्टी बांधें
• टेटनेस इंजेक्शन लगवाएं

🔥 जलना:
• तुरंत ठंडे पानी में डालें
• बर्फ न लगाएं
• मक्खन या तेल न लगाएं
• डॉक्टर को दिखाएं

🤕 बेहोशी:
• सिर नीचे पैर ऊपर करें
• हवादार जगह ले जाएं
• चेहरे पर पानी छिड़कें
• 108 डायल करें

☎️ आपातकाल नंबर: 108, 102`,
}

var childHealthTemplates = map[string]string{
	"en": `Child Health Care:

👶 0-6 months:
• Exclusive breastfeeding
• Regular vaccinations
• Weight monitoring

👧 6 months-2 years:
• Breast milk + complementary food
• Dal, rice, vegetable water
• Fruit juices

🧒 2-5 years:
• Balanced diet
• Hand washing habits
• Physical play

⚠️ See doctor immediately if:
• High fever
• Diarrhea/vomiting
• Difficulty breathing
• Refusing food/water`,
	"hi": `बच्चों का स्वास्थ्य:

👶 0-6 महीने:
• केवल मां का दूध
• नियमित टीकाकरण
• वजन की निगरानी

👧 6 महीने-2 साल:
• मां का दूध + ऊपरी आहार
• दाल, चावल, सब्जी का पानी
• फलों का रस

🧒 2-5 साल:
• संतुलित आहार
• हाथ धोने की आदत
• खेल-कूद

⚠️ तुरंत डॉक्टर को दिखाएं यदि:
• तेज बुखार
• दस्त-उल्टी
• सांस लेने में दिक्कत
• खाना-पीना बंद करना`,
}

var commonSymptomsTemplates = map[string]string{
	"en": `Common Symptoms Treatment:

🤕 Headache:
• Rest with eyes closed
• Apply cold water on forehead
• Take paracetamol if needed
• Gentle massage

🤧 Cold-Cough:
• Drink warm water
• Honey-ginger decoction
• Take steam
• Get rest

🤢 Stomach Pain:
• Eat light food
• Drink more water
• Apply warm compress
• Avoid fried/spicy food

⚠️ If symptoms persist for 2-3 days, see a doctor.`,
	"hi": `सामान्य लक्षणों का इलाज:

🤕 सिरदर्द:
• आराम करें, आंखें बंद करें
• माथे पर ठंडा पानी रखें
• पैरासिटामोल ले सकते हैं
• मालिश करें

🤧 सर्दी-खांसी:
• गर्म पानी पिएं
• शहद-अदरक का काढ़ा
• भाप लें
• आराम करें

🤢 पेट दर्द:
• हल्का भोजन करें
• अधिक पानी पिएं
• गर्म सेक दें
• तली-मसालेदार चीजों से बचें

⚠️ अगर लक्षण 2-3 दिन में न जाएं तो डॉक्टर को दिखाएं।`,
}

var nutritionTemplates = map[string]string{
	"en": `Healthy Diet and Nutrition:

🥗 Include in balanced diet:
• Grains (rice, wheat, millets)
• Pulses (for protein)
• Vegetables (vitamins-minerals)
• Fruits (vitamin C)
• Milk-yogurt (calcium)

💧 Water:
• Drink 8-10 glasses per day
• Don't drink water before/after meals

🚫 Avoid:
• Excessive oil and spices
• Junk food
• Sweets
• Cold drinks

⏰ Maintain regular meal times.`,
	"hi": `स्वस्थ आहार और पोषण:

🥗 संतुलित आहार में शामिल करें:
• अनाज (चावल, गेहूं, बाजरा)
• दालें (प्रोटीन के लिए)
• सब्जियां (विटामिन-मिनरल)
• फल (विटामिन सी)
• दूध-दही (कैल्शियम)

💧 पानी:
• दिन में 8-10 गिलास पानी पिएं
• भोजन से पहले-बाद में पानी न पिएं

🚫 बचने योग्य:
• अधिक तेल-मसाला
• जंक फूड
• मिठाई
• कोल्ड ड्रिंक

⏰ भोजन का समय नियमित रखें।`,
}

var elderlyCareTemplates = map[string]string{
	"en": `Elderly Care:

👴 Common Problems:
• Joint pain
• Blood pressure
• Diabetes
• Vision problems
• Memory issues

💊 Care Tips:
• Give medicines regularly
• Light exercise
• Balanced diet
• Regular sleep schedule
• Maintain hygiene

🏥 Regular Checkups:
• Blood pressure monitoring
• Blood sugar tests
• Eye examinations
• Dental care

❤️ Emotional support and love are essential.`,
	"hi": `बुजुर्गों की देखभाल:

👴 सामान्य समस्याएं:
• जोड़ों का दर्द
• ब्लड प्रेशर
• डायबिटीज
• आंखों की कमजोरी
• भूलने की बीमारी

💊 देखभाल:
• नियमित दवा दें
• हल्का व्यायाम कराएं
• संतुलित आहार दें
• समय पर सुलाएं
• साफ-सफाई रखें

🏥 नियमित जांच:
• ब्लड प्रेशर चेक करें
• ब्लड शुगर टेस्ट
• आंखों की जांच
• दांतों की देखभाल

❤️ मानसिक सहारा और प्यार देना जरूरी है।`,
}

// menuTemplates is the default capability summary shown when no topic matches
var menuTemplates = map[string]string{
	"en": `🏥 I'm your comprehensive health assistant. I can help with:

🩺 Diseases & Symptoms:
• COVID-19, Dengue, Malaria
• Diabetes, High Blood Pressure
• Fever, Headache, Cough

👶 Special Care:
• Pregnancy care
• Child health
• Elderly care

💊 Health Services:
• Vaccination schedules
• First aid
• Nutrition and diet
• Mental health

📍 Current alerts and real-time health news available.

Please ask your health-related question!`,
	"hi": `🏥 मैं आपका स्वास्थ्य सहायक हूं। मैं निम्नलिखित विषयों में मदद कर सकता हूं:

🩺 बीमारियां और लक्षण:
• COVID-19, डेंगू, मलेरिया
• डायबिटीज, हाई ब्लड प्रेशर
• बुखार, सिरदर्द, खांसी

👶 विशेष देखभाल:
• गर्भावस्था की देखभाल
• बच्चों का स्वास्थ्य
• बुजुर्गों की देखभाल

💊 स्वास्थ्य सेवाएं:
• टीकाकरण कार्यक्रम
• प्राथमिक चिकित्सा
• पोषण और आहार
• मानसिक स्वास्थ्य

📍 वर्तमान अलर्ट और समाचार भी उपलब्ध हैं।

कृपया अपना स्वास्थ्य संबंधी प्रश्न पूछें!`,
}

// liveFeedNotices is appended to the outbreak summary when the external feed
// responded
var liveFeedNotices = map[string]string{
	"en": "\n\n🌐 Latest health updates retrieved from WHO.",
	"hi": "\n\n🌐 नवीनतम स्वास्थ्य अपडेट WHO से प्राप्त किए गए हैं।",
}

// pick returns the template variant for a language tag, defaulting to English
func pick(templates map[string]string, language string) string {
	if t, ok := templates[language]; ok {
		return t
	}
	return templates["en"]
}
