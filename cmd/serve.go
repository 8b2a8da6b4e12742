package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/gigstand/gigstand/chord"
	"github.com/gigstand/gigstand/constants"
	"github.com/gigstand/gigstand/key"
	"github.com/gigstand/gigstand/model"
	"github.com/gigstand/gigstand/pitch"
	"github.com/gigstand/gigstand/progression"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves the transposition API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func notationParam(s string) pitch.Notation {
	if s == string(pitch.Flat) {
		return pitch.Flat
	}
	return pitch.Sharp
}

func HandleTransposeChord(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.TransposeChordRequest
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		http.Error(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	res := model.TransposeChordResponse{
		Chord: chord.Transpose(input.Chord, input.Semitones, notationParam(input.Notation)),
	}
	json.NewEncoder(w).Encode(res)
}

func HandleTransposeProgression(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Could not read request body", 400)
		return
	}

	var input model.TransposeProgressionRequest
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		http.Error(w, "Could not unmarshal request body: "+err.Error(), 400)
		return
	}

	notation := notationParam(input.Notation)

	// response shape mirrors the request shape
	var res model.TransposeProgressionResponse
	if len(input.Chords) > 0 {
		res.Chords = progression.TransposeAll(input.Chords, input.Semitones, notation)
	} else {
		res.Text = progression.TransposeText(input.Text, input.Semitones, notation)
	}
	json.NewEncoder(w).Encode(res)
}

func HandleKeyInfo(w http.ResponseWriter, r *http.Request) {
	k := mux.Vars(r)["key"]
	res := model.KeyInfoResponse{
		Key:      k,
		Relative: key.RelativeKey(k),
		Parallel: key.ParallelKey(k),
		Notation: string(key.PreferredNotation(k)),
	}
	json.NewEncoder(w).Encode(res)
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	k := mux.Vars(r)["key"]
	var explicit []pitch.Notation
	if n := r.URL.Query().Get("notation"); n != "" {
		explicit = append(explicit, notationParam(n))
	}

	var notes []string
	if minor := r.URL.Query().Get("minor"); minor == "1" || minor == "true" {
		notes = key.MinorScale(k, explicit...)
	} else {
		notes = key.MajorScale(k, explicit...)
	}
	json.NewEncoder(w).Encode(model.ScaleResponse{Notes: notes})
}

func HandleNotes(w http.ResponseWriter, r *http.Request) {
	res := model.NotesResponse{
		Sharp: pitch.SharpNames,
		Flat:  pitch.FlatNames,
	}
	json.NewEncoder(w).Encode(res)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

func NewRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/transpose/chord", HandleTransposeChord).Methods("POST")
	router.HandleFunc("/transpose/progression", HandleTransposeProgression).Methods("POST")
	router.HandleFunc("/keys/{key}", HandleKeyInfo).Methods("GET")
	router.HandleFunc("/keys/{key}/scale", HandleScale).Methods("GET")
	router.HandleFunc("/notes", HandleNotes).Methods("GET")
	return router
}

func serve() {
	// the API backs browser text inputs, so cors stays wide open
	handler := cors.AllowAll().Handler(NewRouter())
	fmt.Printf("Listening on :%v\n", constants.GetPort())
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
