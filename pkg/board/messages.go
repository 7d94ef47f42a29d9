package board

import "fmt"

// Outbound comment templates, keyed by user language. Only the handful of
// languages the detector can produce; English is the fallback.
var messages = map[string]map[string]string{
	"en": {
		"pr_created":        "Pull Request created: %s",
		"pr_merged":         "PR merged: %s",
		"run_failed":        "The task could not be completed. Failing stage: %s. Reason: %s",
		"run_abandoned":     "The task was abandoned: %s",
		"reject_limit":      "the change was rejected %d times, which is the configured limit",
		"explicit_stop":     "you asked to stop",
		"validation_gone":   "no reply was received before the validation window closed",
		"timeout_notice":    "No reply was received within the validation window. The task has been marked as failed; a new comment will start it again.",
		"unauthorized":      "Hi %s — this validation can only be answered by %s, who created the request. Your reply was recorded but not applied.",
		"validation_prompt": "A Pull Request is ready for your review: %s\n\n%s\n\nReply **approve** to merge, **reject** with the changes you want, or **abandon** to stop this task.",
		"clarify":           "I could not tell whether that was an approval or a rejection. Please reply with **approve**, **reject** (plus the changes you want), or **abandon**.",
	},
	"es": {
		"pr_created":        "Pull Request creado: %s",
		"pr_merged":         "PR fusionado: %s",
		"run_failed":        "La tarea no pudo completarse. Etapa fallida: %s. Motivo: %s",
		"run_abandoned":     "La tarea fue abandonada: %s",
		"reject_limit":      "el cambio fue rechazado %d veces, que es el límite configurado",
		"explicit_stop":     "usted pidió detener el proceso",
		"validation_gone":   "no se recibió respuesta antes del cierre de la ventana de validación",
		"timeout_notice":    "No se recibió respuesta dentro de la ventana de validación. La tarea fue marcada como fallida; un nuevo comentario la reiniciará.",
		"unauthorized":      "Hola %s — esta validación solo puede ser respondida por %s, quien creó la solicitud. Su respuesta fue registrada pero no aplicada.",
		"validation_prompt": "Un Pull Request está listo para su revisión: %s\n\n%s\n\nResponda **approve** para fusionar, **reject** con los cambios que desea, o **abandon** para detener la tarea.",
		"clarify":           "No pude determinar si eso fue una aprobación o un rechazo. Por favor responda **approve**, **reject** (con los cambios que desea) o **abandon**.",
	},
	"fr": {
		"pr_created":        "Pull Request créée : %s",
		"pr_merged":         "PR fusionnée : %s",
		"run_failed":        "La tâche n'a pas pu être terminée. Étape en échec : %s. Raison : %s",
		"run_abandoned":     "La tâche a été abandonnée : %s",
		"reject_limit":      "la modification a été rejetée %d fois, la limite configurée",
		"explicit_stop":     "vous avez demandé l'arrêt",
		"validation_gone":   "aucune réponse reçue avant la fermeture de la fenêtre de validation",
		"timeout_notice":    "Aucune réponse reçue dans la fenêtre de validation. La tâche est marquée en échec ; un nouveau commentaire la relancera.",
		"unauthorized":      "Bonjour %s — seule la personne ayant créé la demande, %s, peut répondre à cette validation. Votre réponse a été enregistrée mais pas appliquée.",
		"validation_prompt": "Une Pull Request est prête pour votre revue : %s\n\n%s\n\nRépondez **approve** pour fusionner, **reject** avec les modifications souhaitées, ou **abandon** pour arrêter la tâche.",
		"clarify":           "Je n'ai pas pu déterminer s'il s'agissait d'une approbation ou d'un refus. Veuillez répondre **approve**, **reject** (avec les modifications souhaitées) ou **abandon**.",
	},
	"pt": {
		"pr_created":        "Pull Request criado: %s",
		"pr_merged":         "PR mesclado: %s",
		"run_failed":        "A tarefa não pôde ser concluída. Etapa com falha: %s. Motivo: %s",
		"run_abandoned":     "A tarefa foi abandonada: %s",
		"reject_limit":      "a alteração foi rejeitada %d vezes, que é o limite configurado",
		"explicit_stop":     "você pediu para parar",
		"validation_gone":   "nenhuma resposta foi recebida antes do fechamento da janela de validação",
		"timeout_notice":    "Nenhuma resposta foi recebida dentro da janela de validação. A tarefa foi marcada como falha; um novo comentário a reiniciará.",
		"unauthorized":      "Olá %s — esta validação só pode ser respondida por %s, que criou a solicitação. Sua resposta foi registrada mas não aplicada.",
		"validation_prompt": "Um Pull Request está pronto para sua revisão: %s\n\n%s\n\nResponda **approve** para mesclar, **reject** com as mudanças desejadas, ou **abandon** para parar a tarefa.",
		"clarify":           "Não consegui determinar se foi uma aprovação ou uma rejeição. Por favor responda **approve**, **reject** (com as mudanças desejadas) ou **abandon**.",
	},
}

// Message renders a template in the given language, falling back to English.
func Message(lang, key string, args ...any) string {
	set, ok := messages[lang]
	if !ok {
		set = messages["en"]
	}
	tmpl, ok := set[key]
	if !ok {
		tmpl = messages["en"][key]
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
